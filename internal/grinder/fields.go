package grinder

// Slot indexes Fields, Constraints and the columns of a result.
type Slot int

const (
	Clock Slot = iota
	Blood
	Carbon
	Spin
	Bug
	Arsonist
	Case
	Position
	Seed
	NumSlots
)

// NumFields is the number of derived fields; the slots after Case are
// bookkeeping and never matched.
const NumFields = int(Case) + 1

var slotNames = [NumSlots]string{
	"clock", "blood", "carbon", "spin", "bug", "arsonist", "case",
	"position", "seed",
}

func (s Slot) String() string {
	if s < 0 || s >= NumSlots {
		return "slot?"
	}
	return slotNames[s]
}

// Fields are the values the game derives from one seed, indexed by Slot.
//
//	Clock     minutes on a 12 hour dial, 0-719; 521-580 never occur
//	Blood     4 digits 1-9
//	Carbon    4 digits 1-9
//	Spin      4 digits 1-9, drawn together with Blood
//	Bug       3 digits 1-9
//	Arsonist  1-6
//	Case      index into the word table, 0-18
type Fields [NumFields]uint32

// Register slots read by Derive.
const (
	clockReg    = 1
	carbonReg   = 7
	bloodReg    = 8
	spinReg     = 9
	codeStride  = 3
	codeDigits  = 4
	bugReg      = 19
	arsonistReg = 22
	shuffleSize = 6
	caseReg     = 30
)

// The clock draw covers 660 minutes; the hour after clockFold is skipped.
const (
	clockFold = 520
	clockGap  = 60
)

// Derive computes the fields of one seed from its reduced window.
func Derive(r *Window) Fields {
	var f Fields

	clock := r[clockReg]
	if clock > clockFold {
		clock += clockGap
	}
	f[Clock] = clock

	var carbon, blood, spin uint32
	for i := 0; i < codeDigits; i++ {
		k := i * codeStride
		carbon = carbon*10 + r[carbonReg+k] + 1
		a := r[bloodReg+k]
		blood = blood*10 + a + 1
		spin = spin*10 + (r[spinReg+k]+1+a)%9 + 1
	}
	f[Blood] = blood
	f[Carbon] = carbon
	f[Spin] = spin

	f[Bug] = bugCode(r[bugReg], r[bugReg+1], r[bugReg+2])
	f[Arsonist] = arsonist(r[arsonistReg : arsonistReg+shuffleSize])
	f[Case] = r[caseReg]
	return f
}

// bugCode turns three draws (mod 9, 8, 7) into a 3 digit code. Later
// digits are bumped past earlier ones, in this order: d1 against d0,
// then the unbumped d2 against d0 and against the bumped d1. The order
// is kept exactly as the game does it even though it lets d2 collide
// with d0 or d1 (draws 0,0,0 give 122).
func bugCode(d0, d1, d2 uint32) uint32 {
	orig := d2
	if d0 <= d1 {
		d1++
	}
	if d0 <= orig {
		d2++
	}
	if d1 <= orig {
		d2++
	}
	return 100*(d0+1) + 10*(d1+1) + d2 + 1
}

// arsonist runs the game's partial shuffle of six rooms and reports the
// step at which room 5 was drawn, counted down from 6.
func arsonist(draws []uint32) uint32 {
	var deck [shuffleSize]uint32
	for i := range deck {
		deck[i] = uint32(i)
	}
	var at uint32
	for i, d := range draws[:shuffleSize] {
		j := i + int(d)
		if deck[j] == shuffleSize-1 {
			at = uint32(shuffleSize - i)
		}
		deck[j] = deck[i]
	}
	return at
}
