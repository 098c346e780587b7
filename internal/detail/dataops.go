package detail

import (
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/models"
)

// dispatch atomically claims the busy flag and, if it wins, starts the
// operation and consumes its phase stream on a detached goroutine. A losing
// claim returns false: the request is rejected, never queued. Caller holds
// mu, but the claim itself is a lock-free test-and-set so acceptance checks
// elsewhere never wait on state mutation.
func (c *Coordinator) dispatch(kind models.OperationKind, start func() <-chan models.OperationEvent) bool {
	if !c.opBusy.CompareAndSwap(false, true) {
		return false
	}

	events := start()
	go c.consumeOperation(kind, events)
	return true
}

// consumeOperation drives one operation's three-phase lifecycle, re-acquiring
// the serialization lock at each phase boundary. Once started the operation
// runs to Finished uninterruptibly.
func (c *Coordinator) consumeOperation(kind models.OperationKind, events <-chan models.OperationEvent) {
	for ev := range events {
		switch ev.Phase {
		case models.PhaseStarted:
			c.mu.Lock()
			c.cell.publish(withOperationActive(c.cell.Current(), true))
			c.mu.Unlock()

		case models.PhaseSucceeded:
			c.mu.Lock()
			c.applyOutcome(kind, ev.Record)
			c.mu.Unlock()

		case models.PhaseFinished:
			c.mu.Lock()
			c.cell.publish(withOperationActive(c.cell.Current(), false))
			c.mu.Unlock()
			c.opBusy.Store(false)

			if ev.Err != nil {
				// Persistence failures are unrecoverable here: forward and
				// leave presentation/abort decisions to the layer above.
				c.log.Error().
					Err(ev.Err).
					Str("kind", kind.String()).
					Msg("persistence operation failed")
				c.fatal <- fmt.Errorf("%s operation: %w", kind, ev.Err)
			}
		}
	}
}

// applyOutcome publishes the kind-specific success state. Caller holds mu.
// The busy flag stays raised until the Finished phase clears it.
func (c *Coordinator) applyOutcome(kind models.OperationKind, record *models.ContactRecord) {
	switch kind {
	case models.OpCreate, models.OpUpdate:
		if record == nil {
			return
		}
		// Adopt the identifier assigned by the engine: for a create this is
		// the record's first stable id.
		c.selected = record.ClientSideID
		c.cell.publish(models.ViewingContact{
			Form:            formFromContact(record.Contact),
			SyncState:       recordDisplayState(*record),
			Editing:         false,
			OperationActive: true,
		})

	case models.OpDelete:
		if record == nil {
			c.selected = ""
			c.cell.publish(models.NoSelection{OperationActive: true})
			return
		}
		c.selected = record.ClientSideID
		c.cell.publish(models.ViewingContact{
			Form:            formFromContact(record.Contact),
			SyncState:       models.DisplayDeleted,
			Editing:         false,
			OperationActive: true,
		})

	case models.OpUndelete:
		if record == nil {
			return
		}
		c.selected = record.ClientSideID
		c.cell.publish(models.ViewingContact{
			Form:            formFromContact(record.Contact),
			SyncState:       recordDisplayState(*record),
			Editing:         false,
			OperationActive: true,
		})
	}
}

// recordDisplayState derives the display sync state straight from a record
// returned by a persistence operation, before the next snapshot emission
// confirms it.
func recordDisplayState(record models.ContactRecord) models.DisplaySyncState {
	return displayState(models.ContactSnapshot{Record: record, Status: record.Status})
}
