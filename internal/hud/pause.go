package hud

import (
	"github.com/solarium-engine/solarium/internal/equipment"
	"github.com/solarium-engine/solarium/internal/movement"
)

// Submenu identifies one of Pause's four tabs (spec.md §4.J).
type Submenu int

const (
	SubmenuInventory Submenu = iota
	SubmenuMap
	SubmenuQuestStatus
	SubmenuOptions
)

var submenuOrder = [...]Submenu{SubmenuInventory, SubmenuMap, SubmenuQuestStatus, SubmenuOptions}

func submenuIndex(s Submenu) int {
	for i, v := range submenuOrder {
		if v == s {
			return i
		}
	}
	return 0
}

// SwitchSubmenuSound plays when LEFT/RIGHT changes the active submenu;
// the game orchestrator overrides it once an audio backend exists, the
// same override-function seam used throughout (hero.TapSound, component
// G; dialog.LetterSound, component I).
var SwitchSubmenuSound = func() {}

// flyingPoint is the minimal movement.Target an item-assignment flight
// animates, since the flying icon is not a map entity.
type flyingPoint struct{ x, y int }

func (p *flyingPoint) XY() (int, int)   { return p.x, p.y }
func (p *flyingPoint) SetXY(x, y int) { p.x, p.y = x, y }

// assignment is an in-flight "assign item to slot" animation (spec.md
// §4.J "the item flies to the slot icon via a target movement").
type assignment struct {
	itemName string
	slot     equipment.ItemSlot
	point    *flyingPoint
	move     *movement.TargetMovement
}

// Pause is the pause menu: four submenus, an in-flight item-slot
// assignment, and an optional save/continue sub-dialog (spec.md §4.J).
type Pause struct {
	active  bool
	submenu Submenu

	eq *equipment.Equipment

	assigning *assignment
	save      *SaveDialog
}

// NewPause creates a Pause bound to the player's equipment, starting on
// the Inventory submenu.
func NewPause(eq *equipment.Equipment) *Pause {
	return &Pause{eq: eq, submenu: SubmenuInventory}
}

// Open/Close toggle the menu; input is absorbed by Pause while open
// (spec.md §4.J).
func (p *Pause) Open()  { p.active = true }
func (p *Pause) Close() { p.active = false; p.assigning = nil; p.save = nil }

func (p *Pause) IsActive() bool { return p.active }

// Submenu returns the currently selected tab.
func (p *Pause) Submenu() Submenu { return p.submenu }

// LeftPressed/RightPressed switch submenus at the tab edges, or forward
// to the save sub-dialog's answer cursor while it is active.
func (p *Pause) LeftPressed() {
	if p.save != nil && p.save.IsActive() {
		p.save.LeftPressed()
		return
	}
	idx := submenuIndex(p.submenu)
	if idx == 0 {
		idx = len(submenuOrder) - 1
	} else {
		idx--
	}
	p.submenu = submenuOrder[idx]
	SwitchSubmenuSound()
}

func (p *Pause) RightPressed() {
	if p.save != nil && p.save.IsActive() {
		p.save.RightPressed()
		return
	}
	idx := (submenuIndex(p.submenu) + 1) % len(submenuOrder)
	p.submenu = submenuOrder[idx]
	SwitchSubmenuSound()
}

// StartAssign begins flying itemName from (fromX,fromY) to the slot
// icon's (toX,toY); Update finishes the assignment once the flight
// arrives, swapping with whatever already occupied the slot.
func (p *Pause) StartAssign(itemName string, slot equipment.ItemSlot, fromX, fromY, toX, toY int) {
	pt := &flyingPoint{x: fromX, y: fromY}
	p.assigning = &assignment{
		itemName: itemName,
		slot:     slot,
		point:    pt,
		move:     movement.NewTargetMovement(pt, toX, toY, 160, 0, 0, nil),
	}
}

// IsAssigning reports whether an item is currently flying to a slot, and
// its current screen position if so.
func (p *Pause) IsAssigning() (x, y int, flying bool) {
	if p.assigning == nil {
		return 0, 0, false
	}
	x, y = p.assigning.point.XY()
	return x, y, true
}

func otherSlot(s equipment.ItemSlot) equipment.ItemSlot {
	if s == equipment.Slot1 {
		return equipment.Slot2
	}
	return equipment.Slot1
}

// Update advances the in-flight assignment.
func (p *Pause) Update(nowMS int64) {
	if p.assigning == nil {
		return
	}
	p.assigning.move.Update(nowMS)
	if !p.assigning.move.IsFinished() {
		return
	}
	a := p.assigning
	other := otherSlot(a.slot)
	if p.eq.GetAssignedItem(other) == a.itemName {
		// the item was already assigned to the other slot: swap rather
		// than leaving it duplicated in both.
		p.eq.SetAssignedItem(other, p.eq.GetAssignedItem(a.slot))
	}
	p.eq.SetAssignedItem(a.slot, a.itemName)
	p.assigning = nil
}

// StartSaveDialog opens the two-question save/continue sub-dialog
// (spec.md §4.J "Save sub-dialog inside Pause offers two sequential
// question screens").
func (p *Pause) StartSaveDialog() {
	p.save = &SaveDialog{}
	p.save.start()
}

// SaveDialog returns the active save sub-dialog, or nil if none.
func (p *Pause) SaveDialog() *SaveDialog { return p.save }

// SwordPressed validates the save sub-dialog's current question, if one
// is open (spec.md §4.J "sword-ok-to-validate").
func (p *Pause) SwordPressed() {
	if p.save != nil && p.save.IsActive() {
		if p.save.swordPressed() {
			p.save = nil
		}
	}
}

// saveDialogStep is which of the two sequential questions is showing.
type saveDialogStep int

const (
	stepAskSave saveDialogStep = iota
	stepAskContinue
	stepDone
)

// SaveDialog is Pause's "save? then continue?" sub-dialog: two
// sequential yes/no questions, LEFT/RIGHT to choose, SWORD to validate.
type SaveDialog struct {
	step   saveDialogStep
	cursor int // 0 = yes (left), 1 = no (right)

	saved     bool
	continued bool
}

func (d *SaveDialog) start() {
	d.step = stepAskSave
	d.cursor = 0
}

// IsActive reports whether either question is still showing.
func (d *SaveDialog) IsActive() bool { return d.step != stepDone }

// Step reports which question is currently showing.
func (d *SaveDialog) Step() saveDialogStep { return d.step }

func (d *SaveDialog) LeftPressed()  { d.cursor = 0 }
func (d *SaveDialog) RightPressed() { d.cursor = 1 }

// Cursor returns the currently highlighted answer (0=yes, 1=no).
func (d *SaveDialog) Cursor() int { return d.cursor }

func (d *SaveDialog) swordPressed() (done bool) {
	switch d.step {
	case stepAskSave:
		d.saved = d.cursor == 0
		d.step = stepAskContinue
		d.cursor = 0
		return false
	case stepAskContinue:
		d.continued = d.cursor == 0
		d.step = stepDone
		return true
	default:
		return true
	}
}

// Saved reports the answer to the first question, once past it.
func (d *SaveDialog) Saved() bool { return d.saved }

// Continued reports the answer to the second question, once finished.
func (d *SaveDialog) Continued() bool { return d.continued }
