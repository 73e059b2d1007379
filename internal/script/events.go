package script

import (
	lua "github.com/yuin/gopher-lua"
)

// The named engine events spec.md §4.K lists. Each is a best-effort call
// into the matching optional Lua global function; a script that doesn't
// define one simply ignores the event.

func (s *Script) EventMapStarted(destinationName string) error {
	return s.call("event_map_started", lua.LString(destinationName))
}

func (s *Script) EventMapOpeningTransitionFinished() error {
	return s.call("event_map_opening_transition_finished")
}

func (s *Script) EventMessageStarted(dialogID string) error {
	return s.call("event_message_started", lua.LString(dialogID))
}

func (s *Script) EventDialogStarted(dialogID string) error {
	return s.call("event_dialog_started", lua.LString(dialogID))
}

func (s *Script) EventDialogFinished(dialogID string, lastAnswer int) error {
	return s.call("event_dialog_finished", lua.LString(dialogID), lua.LNumber(lastAnswer))
}

func (s *Script) EventEntityOnDetector(detectorName, entityName string) error {
	return s.call("event_entity_on_detector", lua.LString(detectorName), lua.LString(entityName))
}

func (s *Script) EventNPCDialog(npcName string) error {
	return s.call("event_npc_dialog", lua.LString(npcName))
}

func (s *Script) EventNPCMovementFinished(npcName string) error {
	return s.call("event_npc_movement_finished", lua.LString(npcName))
}

func (s *Script) EventCameraReachedTarget() error {
	return s.call("event_camera_reached_target")
}

// EventItemAppear/Obtained/Use/Finished are dispatched into the owning
// item's script space only (spec.md §4.K "per-item events
// appear/obtain/use/finished").
func (s *Script) EventItemAppear() error   { return s.call("event_item_appear") }
func (s *Script) EventItemObtained() error { return s.call("event_item_obtained") }
func (s *Script) EventItemUse() error      { return s.call("event_item_use") }
func (s *Script) EventItemFinished() error { return s.call("event_item_finished") }

// EventUpdate ticks the script's owned timers first (so a timer firing
// this frame is visible to event_update's own logic), then dispatches
// event_update unless the script is suspended.
func (s *Script) EventUpdate(nowMS int64) error {
	s.nowMS = nowMS
	for name, t := range s.timers {
		if t.fired(nowMS) {
			delete(s.timers, name)
			if err := s.call(name); err != nil {
				return err
			}
		}
	}
	if s.suspended {
		return nil
	}
	return s.call("event_update")
}
