package shared

// Stat identifies one of the five player statistics.
type Stat int

const (
	StatStr Stat = iota
	StatInt
	StatWis
	StatDex
	StatCon
)

// Stats lists every stat in table order.
var Stats = []Stat{StatStr, StatInt, StatWis, StatDex, StatCon}

var statNames = [...]string{"STR", "INT", "WIS", "DEX", "CON"}

// statLoss is the adjective used when a stat is drained.
var statLoss = [...]string{"weak", "stupid", "naive", "clumsy", "sickly"}

func (s Stat) String() string {
	if s < 0 || int(s) >= len(statNames) {
		return "UNKNOWN"
	}
	return statNames[s]
}

// LossAdjective describes how a character feels after losing the stat.
func (s Stat) LossAdjective() string {
	if s < 0 || int(s) >= len(statLoss) {
		return "strange"
	}
	return statLoss[s]
}
