package dice

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type RollResult struct {
	Total    int
	Rolls    []int
	Bonus    int
	Count    int
	Sides    int
	RawTotal int
}

var (
	ErrInvalidCount  = errors.New("invalid dice count")
	ErrInvalidSides  = errors.New("invalid dice size")
	ErrInvalidString = errors.New("invalid dice string")
)

// Roll rolls count dice of the given size from src and adds bonus.
func Roll(src Source, count, sides, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, ErrInvalidCount
	}

	if sides < 1 {
		return nil, ErrInvalidSides
	}

	out := make([]int, count)
	raw := 0
	for i := 0; i < count; i++ {
		roll := RandInt1(src, sides)
		raw += roll
		out[i] = roll
	}

	return &RollResult{
		Total:    raw + bonus,
		Rolls:    out,
		Bonus:    bonus,
		Count:    count,
		Sides:    sides,
		RawTotal: raw,
	}, nil
}

// RandInt0 returns a value in [0, n). Ranges of one or fewer values return 0
// without consuming randomness.
func RandInt0(src Source, n int) int {
	if n <= 1 {
		return 0
	}
	return src.Intn(n)
}

// RandInt1 returns a value in [1, n]. n <= 1 always yields 1.
func RandInt1(src Source, n int) int {
	return RandInt0(src, n) + 1
}

// Damroll sums num rolls of a die with the given number of sides.
func Damroll(src Source, num, sides int) int {
	if num <= 0 || sides <= 0 {
		return 0
	}
	total := 0
	for i := 0; i < num; i++ {
		total += RandInt1(src, sides)
	}
	return total
}

// ParseString parses "NdS", "NdS+B" or "B+NdS" into count, sides and bonus.
// A bare number is a fixed value with no dice.
func ParseString(diceString string) (count, sides, bonus int, err error) {
	s := strings.ReplaceAll(strings.TrimSpace(diceString), " ", "")
	if s == "" {
		return 0, 0, 0, ErrInvalidString
	}

	for _, part := range strings.Split(s, "+") {
		if part == "" {
			return 0, 0, 0, ErrInvalidString
		}
		if !strings.Contains(part, "d") {
			b, convErr := strconv.Atoi(part)
			if convErr != nil {
				return 0, 0, 0, ErrInvalidString
			}
			bonus += b
			continue
		}
		if sides != 0 {
			return 0, 0, 0, ErrInvalidString
		}
		diceParts := strings.Split(part, "d")
		if len(diceParts) != 2 {
			return 0, 0, 0, ErrInvalidString
		}
		count = 1
		if diceParts[0] != "" {
			if count, err = strconv.Atoi(diceParts[0]); err != nil {
				return 0, 0, 0, ErrInvalidString
			}
		}
		if sides, err = strconv.Atoi(diceParts[1]); err != nil || sides < 1 || count < 1 {
			return 0, 0, 0, ErrInvalidString
		}
	}

	return count, sides, bonus, nil
}

// RollString parses and rolls a dice expression such as "4d6+2".
func RollString(src Source, diceString string) (*RollResult, error) {
	count, sides, bonus, err := ParseString(diceString)
	if err != nil {
		return nil, err
	}
	if sides == 0 {
		return &RollResult{Total: bonus, Bonus: bonus}, nil
	}
	return Roll(src, count, sides, bonus)
}

func (r *RollResult) String() string {
	compact := strings.ReplaceAll(fmt.Sprintf("%v", r.Rolls), " ", "")
	return fmt.Sprintf("**%d** : %s", r.Total, compact)
}
