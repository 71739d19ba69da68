package factory

import "fmt"

type selectorKind int

const (
	selectAny selectorKind = iota
	selectName
	selectAttack
)

// Selector picks templates: any at random, by exact name, or by exact attack.
// The zero value selects at random.
type Selector struct {
	kind   selectorKind
	name   string
	attack int
}

// Any selects uniformly at random
func Any() Selector { return Selector{kind: selectAny} }

// ByName selects templates with this exact name
func ByName(name string) Selector { return Selector{kind: selectName, name: name} }

// ByAttack selects creature templates with this exact attack. Other categories reject it.
func ByAttack(attack int) Selector { return Selector{kind: selectAttack, attack: attack} }

func (s Selector) String() string {
	switch s.kind {
	case selectAny:
		return "any"
	case selectName:
		return fmt.Sprintf("name=%q", s.name)
	case selectAttack:
		return fmt.Sprintf("attack=%d", s.attack)
	}
	return "unknown"
}
