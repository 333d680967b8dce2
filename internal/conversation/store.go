package conversation

import (
	"sync"
	"time"

	"github.com/jasonlvhit/gocron"
)

// Store хранит сессии админов в памяти (ключ – id пользователя).
// Сессии, которые не обновлялись дольше ttl, считаются удалёнными
type Store struct {
	mu       sync.Mutex
	sessions map[int64]Session
	ttl      time.Duration
	now      func() time.Time
}

// NewStore создаёт хранилище. ttl <= 0 – сессии живут вечно. now == nil – time.Now
func NewStore(ttl time.Duration, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		sessions: make(map[int64]Session),
		ttl:      ttl,
		now:      now,
	}
}

// Now возвращает текущее время по часам хранилища
func (s *Store) Now() time.Time {
	return s.now()
}

func (s *Store) expired(session Session) bool {
	return s.ttl > 0 && s.now().Sub(session.UpdatedAt) > s.ttl
}

// Get возвращает сессию пользователя
func (s *Store) Get(userID int64) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[userID]
	if !ok {
		return Session{}, false
	}
	if s.expired(session) {
		delete(s.sessions, userID)
		return Session{}, false
	}
	return session, true
}

// Put сохраняет сессию. Сессия в состоянии Idle удаляется
func (s *Store) Put(userID int64, session Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session.State == Idle {
		delete(s.sessions, userID)
		return
	}
	s.sessions[userID] = session
}

// Delete удаляет сессию. Возвращает true, если сессия была
func (s *Store) Delete(userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.sessions[userID]
	delete(s.sessions, userID)
	return ok
}

// Len возвращает количество сессий (включая ещё не удалённые просроченные)
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep удаляет просроченные сессии и возвращает их количество
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, session := range s.sessions {
		if s.expired(session) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Sweeper периодически вызывает Store.Sweep
type Sweeper struct {
	scheduler *gocron.Scheduler
	stop      chan bool
}

// StartSweeper запускает очистку раз в interval (минимум – секунда).
// onSweep (если не nil) получает количество удалённых сессий
func StartSweeper(store *Store, interval time.Duration, onSweep func(removed int)) *Sweeper {
	seconds := uint64(interval / time.Second)
	if seconds == 0 {
		seconds = 1
	}

	scheduler := gocron.NewScheduler()
	scheduler.Every(seconds).Seconds().Do(func() {
		removed := store.Sweep()
		if onSweep != nil {
			onSweep(removed)
		}
	})

	return &Sweeper{scheduler: scheduler, stop: scheduler.Start()}
}

// Stop останавливает очистку
func (s *Sweeper) Stop() {
	s.stop <- true
	s.scheduler.Clear()
}
