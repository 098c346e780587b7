package detail

import (
	"github.com/MKhiriev/go-contact-keeper/models"
)

// reconcile merges a new upstream snapshot set into the published state
// without clobbering in-progress edits. The whole pass runs under the
// serialization lock.
//
// A reconciliation pass never raises a dialog: upstream is not a user
// action, and surprising the user with a modal from a background refresh is
// explicitly disallowed.
func (c *Coordinator) reconcile(set models.SnapshotSet) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialLoad {
		c.initialLoad = false
	}

	c.upstream = set

	if c.selected == "" {
		// Nothing selected (or create-new in progress): the new mapping is
		// stored but the published state is untouched.
		return
	}

	snap, exists := set[c.selected]
	if !exists {
		// The shown record vanished upstream. Known lossy transition: any
		// unsaved edits are discarded without prompting, because a
		// reconciliation pass may not open dialogs. Dialog and busy flag
		// survive the switch.
		current := c.cell.Current()
		c.log.Warn().
			Str("client_side_id", c.selected).
			Msg("selected contact removed upstream, dropping selection")
		c.selected = ""
		c.cell.publish(models.NoSelection{
			OperationActive: current.OperationInFlight(),
			Dialog:          current.ActiveDialog(),
		})
		return
	}

	switch state := c.cell.Current().(type) {
	case models.NoSelection:
		c.cell.publish(c.viewSnapshot(snap, false, state.Dialog))

	case models.ViewingContact:
		if !state.Editing {
			// Upstream wins while the user is not editing. Editing flag,
			// dialog, and busy flag are preserved as-is.
			state.Form = formFromContact(snap.Record.Contact)
			state.SyncState = displayState(snap)
			c.cell.publish(state)
			return
		}

		if snap.Status == models.StatusDeletedLocal || snap.Record.Deleted {
			// TODO: decide what editing a record that was deleted underneath
			// should do — prompt on next user action, or force-close the
			// editor. Deliberately unresolved; surfaced loudly and the
			// published state is left untouched.
			c.log.Error().
				Err(errEditConflictsWithDeletion).
				Str("client_side_id", c.selected).
				Msg("reconciliation hit an unresolved edit/delete conflict")
			return
		}

		// The user holds unsaved edits: upstream field values are ignored
		// for the shown record until the edit session ends.
	}
}
