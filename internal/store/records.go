package store

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/NoeTobes/FullStackWebApp/internal/domain"
	"github.com/NoeTobes/FullStackWebApp/internal/storage"
	apperrors "github.com/NoeTobes/FullStackWebApp/pkg/util"
)

// Records is the in-memory record store backed by a single persisted blob.
// All access is serialized through one mutex; callers mutate and save
// immediately.
type Records struct {
	mu     sync.Mutex
	kv     storage.KV
	logger *zap.Logger
	data   Store
}

// NewRecords wraps a KV backend. Call Load before first use.
func NewRecords(kv storage.KV, logger *zap.Logger) *Records {
	return &Records{kv: kv, logger: logger}
}

// Load deserializes the persisted blob. A missing or unparsable blob is
// replaced with the default dataset, which is persisted immediately.
func (r *Records) Load(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, ok, err := r.kv.Get(ctx, BlobKey)
	if err != nil {
		return err
	}
	if !ok {
		r.logger.Info("no persisted data, seeding defaults")
		r.data = Defaults()
		return r.save(ctx)
	}

	var decoded Store
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		// Data-loss-on-corruption policy: recover silently with defaults.
		r.logger.Error("persisted data unparsable, reseeding defaults",
			zap.Error(apperrors.NewStorageCorruption(err)))
		r.data = Defaults()
		return r.save(ctx)
	}

	r.data = decoded
	r.logger.Info("data loaded from storage", zap.Int("accounts", len(decoded.Accounts)))
	return nil
}

// Save serializes the full store back to persisted storage.
func (r *Records) Save(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.save(ctx)
}

func (r *Records) save(ctx context.Context) error {
	raw, err := json.Marshal(r.data)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, BlobKey, string(raw))
}

// FindAccountByEmail matches case-sensitively on the login key.
func (r *Records) FindAccountByEmail(email string) (*domain.Account, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.findAccount(email)
}

func (r *Records) findAccount(email string) (*domain.Account, bool) {
	for i := range r.data.Accounts {
		if r.data.Accounts[i].Email == email {
			return &r.data.Accounts[i], true
		}
	}
	return nil, false
}

// InsertAccount appends a new account, enforcing email uniqueness and
// assigning the next id. Ids are max+1 rather than len+1 so they stay
// unique even if records are ever removed out of band. The caller persists.
func (r *Records) InsertAccount(firstName, lastName, email, password string, role domain.Role, verified bool) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.findAccount(email); exists {
		return domain.Account{}, apperrors.NewConflict("email already registered", map[string]any{"email": email})
	}

	nextID := 1
	for _, acc := range r.data.Accounts {
		if acc.ID >= nextID {
			nextID = acc.ID + 1
		}
	}

	account := domain.Account{
		ID:        nextID,
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  password,
		Role:      role,
		Verified:  verified,
	}
	r.data.Accounts = append(r.data.Accounts, account)
	return account, nil
}

// MarkVerified flips an account's verified flag. The flag never reverts.
func (r *Records) MarkVerified(email string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.findAccount(email)
	if !ok {
		return false
	}
	account.Verified = true
	return true
}

// Accounts returns a snapshot of all accounts.
func (r *Records) Accounts() []domain.Account {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Account, len(r.data.Accounts))
	copy(out, r.data.Accounts)
	return out
}

// Departments returns a snapshot of all departments.
func (r *Records) Departments() []domain.Department {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Department, len(r.data.Departments))
	copy(out, r.data.Departments)
	return out
}

// Employees returns a snapshot of all employees.
func (r *Records) Employees() []domain.Employee {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Employee, len(r.data.Employees))
	copy(out, r.data.Employees)
	return out
}

// Requests returns a snapshot of all requests.
func (r *Records) Requests() []domain.Request {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Request, len(r.data.Requests))
	copy(out, r.data.Requests)
	return out
}

// PendingEmail reads the pending-verification marker.
func (r *Records) PendingEmail(ctx context.Context) (string, bool, error) {
	return r.kv.Get(ctx, PendingEmailKey)
}

// SetPendingEmail remembers which address awaits verification.
func (r *Records) SetPendingEmail(ctx context.Context, email string) error {
	return r.kv.Set(ctx, PendingEmailKey, email)
}

// ClearPendingEmail removes the marker.
func (r *Records) ClearPendingEmail(ctx context.Context) error {
	return r.kv.Delete(ctx, PendingEmailKey)
}

// SessionLookupKey reads the persisted login key (the account's email).
func (r *Records) SessionLookupKey(ctx context.Context) (string, bool, error) {
	return r.kv.Get(ctx, SessionKey)
}

// SetSessionLookupKey persists the login key after a successful login.
func (r *Records) SetSessionLookupKey(ctx context.Context, email string) error {
	return r.kv.Set(ctx, SessionKey, email)
}

// ClearSessionLookupKey removes the login key.
func (r *Records) ClearSessionLookupKey(ctx context.Context) error {
	return r.kv.Delete(ctx, SessionKey)
}
