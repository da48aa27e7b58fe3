package draft

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m1shk4/ASB-BookingFront/internal/domain"
	"github.com/m1shk4/ASB-BookingFront/pkg/psqlbuilder"
)

// Repository репозиторий для хранения черновиков бронирований
// Один черновик на пару (клиент, элемент каталога); запись целиком
// перезаписывается при каждом сохранении (last-write-wins)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория черновиков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает черновик по ключу
func (r *Repository) Get(ctx context.Context, key domain.DraftKey) (*domain.BookingDraft, error) {
	query, args, err := psqlbuilder.Select("payload").
		From("booking_drafts").
		Where(squirrel.Eq{
			"client_id": key.ClientID,
			"item_type": string(key.ItemType),
			"item_id":   key.ItemID,
		}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var payload []byte
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan payload: %v", ErrScanRow, err)
	}

	var persisted persistedDraft
	if err := json.Unmarshal(payload, &persisted); err != nil {
		return nil, fmt.Errorf("%w: Get - unmarshal payload: %v", ErrDecodePayload, err)
	}

	return persisted.toDomain(), nil
}

// Upsert сохраняет черновик, перезаписывая существующий
func (r *Repository) Upsert(ctx context.Context, key domain.DraftKey, d *domain.BookingDraft) error {
	payload, err := json.Marshal(toPersisted(d))
	if err != nil {
		return fmt.Errorf("%w: Upsert - marshal payload: %v", ErrEncodePayload, err)
	}

	query, args, err := psqlbuilder.Insert("booking_drafts").
		Columns("client_id", "item_type", "item_id", "payload").
		Values(key.ClientID, string(key.ItemType), key.ItemID, payload).
		Suffix("ON CONFLICT (client_id, item_type, item_id) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// Delete удаляет черновик по ключу
// Отсутствие черновика не считается ошибкой
func (r *Repository) Delete(ctx context.Context, key domain.DraftKey) error {
	query, args, err := psqlbuilder.Delete("booking_drafts").
		Where(squirrel.Eq{
			"client_id": key.ClientID,
			"item_type": string(key.ItemType),
			"item_id":   key.ItemID,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}
