// Package session owns the authenticated identity: it normalizes the
// login response into a models.Session, persists it locally so the
// identity survives restarts, and hands the bearer token to the HTTP
// client.
package session

import (
	"encoding/json"
	"errors"
	"sync"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fondajosmar/fonda-client/models"
	"github.com/fondajosmar/fonda-client/utils"
)

// Persistence uses two slots: one for the raw bearer token, one for
// the serialized normalized session. Both are cleared together on
// logout and validated independently on restore.
const (
	slotToken = "token"
	slotUser  = "user"
)

type slot struct {
	Key   string `gorm:"primaryKey;type:varchar(32)"`
	Value string `gorm:"type:text"`
}

func (slot) TableName() string { return "session_slots" }

// Store is the single owner of session state. It is safe for
// concurrent use; every outstanding request reads the token through
// it.
type Store struct {
	mu      sync.RWMutex
	db      *gorm.DB
	current *models.Session
}

// Open opens (or creates) the session database at path.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	return NewStore(db)
}

// NewStore wraps an already-open database connection.
func NewStore(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&slot{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Login normalizes the raw identity payload returned by the auth
// service, fills identity gaps from the token's claims, persists the
// result and makes it the active session. The payload shape is
// producer-controlled; see models.NormalizeSession for the field
// priority.
func (s *Store) Login(raw models.Raw, token string) (models.Session, error) {
	sess := models.NormalizeSession(raw, token)
	fillFromClaims(&sess)

	if !sess.Valid() {
		return models.Session{}, errors.New("login response carries no username")
	}

	payload, err := json.Marshal(sess)
	if err != nil {
		return models.Session{}, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		for _, sl := range []slot{{slotToken, token}, {slotUser, string(payload)}} {
			if err := tx.Save(&sl).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.Session{}, err
	}

	s.mu.Lock()
	s.current = &sess
	s.mu.Unlock()
	if utils.InfoLogger != nil {
		utils.InfoLogger.Infof("session opened for %q roles=%v", sess.Username, sess.Roles)
	}
	return sess, nil
}

// Restore loads the persisted session, if any. A payload that fails
// validation (missing username) or whose token has already expired is
// deleted and nil is returned; calling Restore again is then a no-op.
func (s *Store) Restore() (*models.Session, error) {
	var slots []slot
	if err := s.db.Find(&slots).Error; err != nil {
		return nil, err
	}

	var token, userJSON string
	for _, sl := range slots {
		switch sl.Key {
		case slotToken:
			token = sl.Value
		case slotUser:
			userJSON = sl.Value
		}
	}
	if userJSON == "" {
		return nil, nil
	}

	var sess models.Session
	if err := json.Unmarshal([]byte(userJSON), &sess); err != nil || !sess.Valid() {
		if clearErr := s.clear(); clearErr != nil {
			return nil, clearErr
		}
		return nil, nil
	}
	sess.Token = token

	if token != "" && tokenExpired(token) {
		if utils.InfoLogger != nil {
			utils.InfoLogger.Infof("discarding expired session for %q", sess.Username)
		}
		if err := s.clear(); err != nil {
			return nil, err
		}
		return nil, nil
	}

	s.mu.Lock()
	s.current = &sess
	s.mu.Unlock()
	return s.Current(), nil
}

// Logout clears the persisted slots and the active session. Responses
// still in flight will resolve against detached state.
func (s *Store) Logout() error {
	if err := s.clear(); err != nil {
		return err
	}
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	return nil
}

func (s *Store) clear() error {
	return s.db.Where("key IN ?", []string{slotToken, slotUser}).Delete(&slot{}).Error
}

// Current returns a copy of the active session, or nil when logged
// out.
func (s *Store) Current() *models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	cp := *s.current
	cp.Roles = append([]string(nil), s.current.Roles...)
	return &cp
}

// Token implements client.TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return ""
	}
	return s.current.Token
}
