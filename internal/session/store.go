package session

import "sync"

// Store keeps per-chat sessions for the process lifetime. Sessions are never
// expired; unbounded growth is accepted. Besides guarding the map itself, the
// store hands out one mutex per chat so overlapping updates for the same chat
// serialize instead of racing on the session.
type Store struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
	locks    map[int64]*sync.Mutex
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[int64]*Session),
		locks:    make(map[int64]*sync.Mutex),
	}
}

func (s *Store) Get(chatID int64) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[chatID]
	return sess, ok
}

func (s *Store) Put(chatID int64, sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[chatID] = sess
}

func (s *Store) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, chatID)
}

// ChatLock returns the mutex serializing handlers for one chat. Handlers
// hold it for the whole of an update, including the blocking fetch.
func (s *Store) ChatLock(chatID int64) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[chatID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[chatID] = lock
	}
	return lock
}
