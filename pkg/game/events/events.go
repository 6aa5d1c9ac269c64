// Package events defines the random events that collectibles can trigger and
// the weighted table used to choose one.
package events

// Source produces uniform numbers in [0,1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Kind is a random event outcome
type Kind int

const (
	Nothing Kind = iota
	EscapePortal
	SpawnGhost
	Damage
	SanityLoss
	Curse
	Heal
	SanityRestore
	LuckBoost
	Treasure
	SceneTransition
)

// KindInfo contains the config name and message key of each kind
type KindInfo struct {
	Name       string // key in config event weights
	MessageKey string // i18n key
}

// Kinds maps event kinds to their information
var Kinds = map[Kind]KindInfo{
	Nothing:         {Name: "nothing", MessageKey: "EVENT_NOTHING"},
	EscapePortal:    {Name: "escape_portal", MessageKey: "EVENT_ESCAPE_PORTAL"},
	SpawnGhost:      {Name: "spawn_ghost", MessageKey: "EVENT_SPAWN_GHOST"},
	Damage:          {Name: "damage", MessageKey: "EVENT_DAMAGE"},
	SanityLoss:      {Name: "sanity_loss", MessageKey: "EVENT_SANITY_LOSS"},
	Curse:           {Name: "curse", MessageKey: "EVENT_CURSE"},
	Heal:            {Name: "heal", MessageKey: "EVENT_HEAL"},
	SanityRestore:   {Name: "sanity_restore", MessageKey: "EVENT_SANITY_RESTORE"},
	LuckBoost:       {Name: "luck_boost", MessageKey: "EVENT_LUCK_BOOST"},
	Treasure:        {Name: "treasure", MessageKey: "EVENT_TREASURE"},
	SceneTransition: {Name: "scene_transition", MessageKey: "EVENT_SCENE_TRANSITION"},
}

// Order is the fixed scan order of the selection table
var Order = []Kind{
	EscapePortal, SpawnGhost, Damage, SanityLoss, Curse,
	Heal, SanityRestore, LuckBoost, Treasure, SceneTransition,
}

// String returns the config name of the kind
func (k Kind) String() string {
	if info, ok := Kinds[k]; ok {
		return info.Name
	}
	return "unknown"
}

// Entry is one weighted row of the table
type Entry struct {
	Kind   Kind
	Weight float64
}

// Table is an ordered list of weighted outcomes. Weights need not sum to 1:
// any probability left over selects Nothing.
type Table struct {
	entries []Entry
}

// NewTable builds a table from entries in scan order
func NewTable(entries []Entry) *Table {
	return &Table{entries: append([]Entry(nil), entries...)}
}

// TableFromWeights builds a table in Order from named weights.
// Missing names get weight 0.
func TableFromWeights(weights map[string]float64) *Table {
	entries := make([]Entry, 0, len(Order))
	for _, k := range Order {
		entries = append(entries, Entry{Kind: k, Weight: weights[k.String()]})
	}
	return NewTable(entries)
}

// Entries returns a copy of the rows
func (t *Table) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}

// Total returns the sum of the weights
func (t *Table) Total() float64 {
	total := 0.0
	for _, e := range t.entries {
		total += e.Weight
	}
	return total
}

// Residual returns the probability mass that falls through to Nothing
func (t *Table) Residual() float64 {
	r := 1 - t.Total()
	if r < 0 {
		return 0
	}
	return r
}

// Select maps r in [0,1) to an outcome: the first row whose running weight sum
// is strictly greater than r wins.
func (t *Table) Select(r float64) Kind {
	cumulative := 0.0
	for _, e := range t.entries {
		cumulative += e.Weight
		if r < cumulative {
			return e.Kind
		}
	}
	return Nothing
}

// Roll draws one outcome from src
func (t *Table) Roll(src Source) Kind {
	return t.Select(src.Float64())
}

// ShouldTrigger decides whether a collectible pickup fires an event.
// Fake items always do and consume no random number.
func ShouldTrigger(isFake bool, chance float64, src Source) bool {
	if isFake {
		return true
	}
	return src.Float64() < chance
}
