package memory

import (
	"sort"
	"sync"
)

type threadRecord struct {
	id, owner, title, body, date string
}

type commentRecord struct {
	seq                                int
	id, threadID, owner, content, date string
	isDeleted                          bool
}

type replyRecord struct {
	seq                                 int
	id, commentID, owner, content, date string
	isDeleted                           bool
}

type likeKey struct {
	commentID, userID string
}

// Store is an in-memory relational store shared by the thread, comment and reply
// repositories. It keeps the primary key, unique (comment, user) like and cascade
// rules of the SQL schema. Owners are not checked against users: usernames resolve
// through AddUser and fall back to the owner id.
type Store struct {
	mu       sync.RWMutex
	seq      int
	users    map[string]string
	threads  map[string]threadRecord
	comments map[string]*commentRecord
	replies  map[string]*replyRecord
	likes    map[likeKey]struct{}
}

func NewStore() *Store {
	return &Store{
		users:    make(map[string]string),
		threads:  make(map[string]threadRecord),
		comments: make(map[string]*commentRecord),
		replies:  make(map[string]*replyRecord),
		likes:    make(map[likeKey]struct{}),
	}
}

// AddUser registers the username shown for id.
func (s *Store) AddUser(id, username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[id] = username
}

// DeleteThread removes a thread with its comments, replies and likes.
func (s *Store) DeleteThread(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.threads, id)
	for cid, c := range s.comments {
		if c.threadID == id {
			s.deleteCommentLocked(cid)
		}
	}
}

// DeleteComment removes a comment with its replies and likes.
func (s *Store) DeleteComment(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteCommentLocked(id)
}

func (s *Store) deleteCommentLocked(id string) {
	delete(s.comments, id)
	for rid, r := range s.replies {
		if r.commentID == id {
			delete(s.replies, rid)
		}
	}
	for k := range s.likes {
		if k.commentID == id {
			delete(s.likes, k)
		}
	}
}

// LikeRows is the number of like rows stored for the pair, 0 or 1.
func (s *Store) LikeRows(commentID, userID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.likes[likeKey{commentID, userID}]; ok {
		return 1
	}
	return 0
}

func (s *Store) usernameLocked(id string) string {
	if name, ok := s.users[id]; ok {
		return name
	}
	return id
}

func (s *Store) nextSeqLocked() int {
	s.seq++
	return s.seq
}

// byDate orders records by date, keeping insertion order on ties.
func byDate[T any](items []T, date func(T) string, seq func(T) int) {
	sort.SliceStable(items, func(i, j int) bool {
		if date(items[i]) != date(items[j]) {
			return date(items[i]) < date(items[j])
		}
		return seq(items[i]) < seq(items[j])
	})
}
