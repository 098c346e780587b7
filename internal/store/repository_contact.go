package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/models"
	"github.com/jackc/pgerrcode"
)

// contactRepository is the PostgreSQL-backed implementation of
// [ContactRepository]. All methods obtain a context-scoped logger via
// [logger.FromContext] for structured, request-level tracing of database
// interactions.
type contactRepository struct {
	logger     *logger.Logger
	db         *DB
	classifier *PostgresErrorClassifier
}

// NewContactRepository constructs a [ContactRepository] backed by the
// provided database connection and logger.
func NewContactRepository(db *DB, logger *logger.Logger) ContactRepository {
	logger.Debug().Msg("creating contact repository")
	return &contactRepository{
		db:         db,
		logger:     logger,
		classifier: NewPostgresErrorClassifier(),
	}
}

func (r *contactRepository) GetAllStates(ctx context.Context, userID int64) ([]models.ContactState, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getServerContactStates, userID)
	if err != nil {
		log.Err(err).
			Str("func", "*contactRepository.GetAllStates").
			Int64("user_id", userID).
			Bool("retryable", r.classifier.Classify(err) == Retryable).
			Msg("failed to query contact states")
		return nil, fmt.Errorf("failed to query contact states: %w", err)
	}
	defer rows.Close()

	var states []models.ContactState

	for rows.Next() {
		var state models.ContactState
		if scanErr := rows.Scan(&state.ClientSideID, &state.Version, &state.Deleted, &state.UpdatedAt); scanErr != nil {
			log.Err(scanErr).
				Str("func", "*contactRepository.GetAllStates").
				Int64("user_id", userID).
				Msg("failed to scan contact state row")
			return nil, fmt.Errorf("failed to scan contact state row: %w", scanErr)
		}
		states = append(states, state)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*contactRepository.GetAllStates").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating contact state rows: %w", rowsErr)
	}

	return states, nil
}

func (r *contactRepository) GetContacts(ctx context.Context, userID int64, clientSideIDs []string) ([]models.ContactRecord, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getContactsByID, userID, clientSideIDs)
	if err != nil {
		log.Err(err).
			Str("func", "*contactRepository.GetContacts").
			Int64("user_id", userID).
			Bool("retryable", r.classifier.Classify(err) == Retryable).
			Msg("failed to query requested contacts")
		return nil, fmt.Errorf("failed to query requested contacts: %w", err)
	}
	defer rows.Close()

	var records []models.ContactRecord

	for rows.Next() {
		var record models.ContactRecord
		scanErr := rows.Scan(
			&record.ClientSideID,
			&record.UserID,
			&record.Contact.FirstName,
			&record.Contact.LastName,
			&record.Contact.Title,
			&record.Contact.Department,
			&record.Version,
			&record.Deleted,
			&record.CreatedAt,
			&record.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*contactRepository.GetContacts").
				Int64("user_id", userID).
				Msg("failed to scan contact row")
			return nil, fmt.Errorf("failed to scan contact row: %w", scanErr)
		}
		records = append(records, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*contactRepository.GetContacts").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating contact rows: %w", rowsErr)
	}

	return records, nil
}

func (r *contactRepository) SaveContacts(ctx context.Context, userID int64, records ...models.ContactRecord) error {
	log := logger.FromContext(ctx)

	for _, record := range records {
		_, err := r.db.ExecContext(ctx, saveContact,
			record.ClientSideID,
			userID,
			record.Contact.FirstName,
			record.Contact.LastName,
			record.Contact.Title,
			record.Contact.Department,
			record.Version,
			record.Deleted,
		)
		if err != nil {
			log.Err(err).
				Str("func", "*contactRepository.SaveContacts").
				Int64("user_id", userID).
				Str("client_side_id", record.ClientSideID).
				Msg("failed to insert contact")

			switch postgresError(err) {
			case pgerrcode.UniqueViolation:
				return fmt.Errorf("contact %s: %w", record.ClientSideID, ErrContactAlreadyExists)
			default:
				return fmt.Errorf("failed to save contact (client_side_id=%s): %w", record.ClientSideID, err)
			}
		}
	}

	return nil
}

// UpdateContact applies one optimistic-concurrency entry. A zero-row update
// means either a version conflict or a missing record; a follow-up
// existence probe disambiguates the two.
func (r *contactRepository) UpdateContact(ctx context.Context, userID int64, update models.ContactUpdate) error {
	log := logger.FromContext(ctx)

	query, args, err := buildContactUpdateQuery(userID, update)
	if err != nil {
		log.Err(err).
			Str("func", "*contactRepository.UpdateContact").
			Int64("user_id", userID).
			Str("client_side_id", update.ClientSideID).
			Msg("failed to build update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*contactRepository.UpdateContact").
			Int64("user_id", userID).
			Str("client_side_id", update.ClientSideID).
			Bool("retryable", r.classifier.Classify(err) == Retryable).
			Msg("failed to execute update for contact")
		return fmt.Errorf("failed to update contact (client_side_id=%s): %w", update.ClientSideID, err)
	}

	return r.checkVersionedResult(ctx, result, userID, update.ClientSideID)
}

func (r *contactRepository) DeleteContact(ctx context.Context, userID int64, entry models.DeleteEntry) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteContact, userID, entry.ClientSideID, entry.Version)
	if err != nil {
		log.Err(err).
			Str("func", "*contactRepository.DeleteContact").
			Int64("user_id", userID).
			Str("client_side_id", entry.ClientSideID).
			Bool("retryable", r.classifier.Classify(err) == Retryable).
			Msg("failed to execute soft delete for contact")
		return fmt.Errorf("failed to delete contact (client_side_id=%s): %w", entry.ClientSideID, err)
	}

	return r.checkVersionedResult(ctx, result, userID, entry.ClientSideID)
}

func (r *contactRepository) UndeleteContact(ctx context.Context, userID int64, entry models.DeleteEntry) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, undeleteContact, userID, entry.ClientSideID, entry.Version)
	if err != nil {
		log.Err(err).
			Str("func", "*contactRepository.UndeleteContact").
			Int64("user_id", userID).
			Str("client_side_id", entry.ClientSideID).
			Bool("retryable", r.classifier.Classify(err) == Retryable).
			Msg("failed to execute restore for contact")
		return fmt.Errorf("failed to restore contact (client_side_id=%s): %w", entry.ClientSideID, err)
	}

	return r.checkVersionedResult(ctx, result, userID, entry.ClientSideID)
}

// checkVersionedResult inspects a version-guarded DML result. Zero affected
// rows with an existing record is a version conflict; zero rows with no
// record at all is not-found.
func (r *contactRepository) checkVersionedResult(ctx context.Context, result interface{ RowsAffected() (int64, error) }, userID int64, clientSideID string) error {
	log := logger.FromContext(ctx)

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected (client_side_id=%s): %w", clientSideID, err)
	}
	if affected > 0 {
		return nil
	}

	var exists bool
	if err := r.db.QueryRowContext(ctx, contactExists, userID, clientSideID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to probe contact existence (client_side_id=%s): %w", clientSideID, err)
	}

	if exists {
		log.Warn().
			Int64("user_id", userID).
			Str("client_side_id", clientSideID).
			Msg("version guard rejected contact modification")
		return fmt.Errorf("contact %s: %w", clientSideID, ErrVersionConflict)
	}

	return fmt.Errorf("contact %s: %w", clientSideID, ErrContactNotFound)
}
