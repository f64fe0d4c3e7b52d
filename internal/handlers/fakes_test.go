package handlers_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/thereayou/campus-connect/internal/models"
	"github.com/thereayou/campus-connect/internal/websocket"
)

// fakeStore — хранилище в памяти, считающее обращения к "тяжелым"
// запросам, чтобы тесты могли проверить работу кэша
type fakeStore struct {
	mu     sync.Mutex
	users  map[uuid.UUID]*models.User
	posts  map[uuid.UUID]*models.Post
	clubs  map[uuid.UUID]*models.Club
	events map[uuid.UUID]*models.Event

	latestPostsCalls    int
	upcomingEventsCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:  make(map[uuid.UUID]*models.User),
		posts:  make(map[uuid.UUID]*models.Post),
		clubs:  make(map[uuid.UUID]*models.Club),
		events: make(map[uuid.UUID]*models.Event),
	}
}

func (s *fakeStore) SaveUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	// Уникальный индекс по email, как в настоящей схеме
	for _, existing := range s.users {
		if existing.ID != user.ID && existing.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	s.users[user.ID] = user
	return nil
}

func (s *fakeStore) UpdateUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	s.users[user.ID] = user
	return nil
}

func (s *fakeStore) GetUser(id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getUserLocked(id)
}

func (s *fakeStore) getUserLocked(id string) (*models.User, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	user, ok := s.users[uid]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *fakeStore) FindUserByEmail(email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email = strings.ToLower(strings.TrimSpace(email))
	for _, user := range s.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeStore) SavePost(post *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now
	s.posts[post.ID] = post
	return nil
}

func (s *fakeStore) GetPost(id string) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getPostLocked(id)
}

func (s *fakeStore) getPostLocked(id string) (*models.Post, error) {
	pid, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	post, ok := s.posts[pid]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s.resolvePost(post), nil
}

// resolvePost возвращает копию поста с подставленными автором и
// авторами комментариев, как это делает Preload в реальном хранилище
func (s *fakeStore) resolvePost(post *models.Post) *models.Post {
	copied := *post
	if author, ok := s.users[post.AuthorID]; ok {
		copied.Author = *author
	}
	copied.Likes = append([]models.User(nil), post.Likes...)
	copied.Comments = make([]models.Comment, len(post.Comments))
	for i, cm := range post.Comments {
		copied.Comments[i] = cm
		if author, ok := s.users[cm.AuthorID]; ok {
			copied.Comments[i].Author = *author
		}
	}
	return &copied
}

func (s *fakeStore) UpdatePost(post *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.posts[post.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Content = post.Content
	stored.ImageURL = post.ImageURL
	stored.UpdatedAt = time.Now()
	return nil
}

func (s *fakeStore) DeletePost(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pid, err := uuid.Parse(id)
	if err != nil {
		return gorm.ErrRecordNotFound
	}
	if _, ok := s.posts[pid]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.posts, pid)
	return nil
}

func (s *fakeStore) LatestPosts(limit int) ([]models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.latestPostsCalls++

	posts := make([]*models.Post, 0, len(s.posts))
	for _, p := range s.posts {
		posts = append(posts, p)
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	if len(posts) > limit {
		posts = posts[:limit]
	}

	result := make([]models.Post, len(posts))
	for i, p := range posts {
		result[i] = *s.resolvePost(p)
	}
	return result, nil
}

func (s *fakeStore) TogglePostLike(postID, userID uuid.UUID) (*models.Post, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[postID]
	if !ok {
		return nil, false, gorm.ErrRecordNotFound
	}
	user, ok := s.users[userID]
	if !ok {
		return nil, false, gorm.ErrRecordNotFound
	}

	idx := -1
	for i, u := range post.Likes {
		if u.ID == userID {
			idx = i
			break
		}
	}

	liked := idx == -1
	if liked {
		post.Likes = append(post.Likes, *user)
	} else {
		post.Likes = append(post.Likes[:idx], post.Likes[idx+1:]...)
	}

	return s.resolvePost(post), liked, nil
}

func (s *fakeStore) AddComment(postID, authorID uuid.UUID, content string) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[postID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	post.Comments = append(post.Comments, models.Comment{
		ID:        uuid.New(),
		PostID:    postID,
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: time.Now(),
	})
	return s.resolvePost(post), nil
}

func (s *fakeStore) CreateClub(club *models.Club, creatorID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	creator, ok := s.users[creatorID]
	if !ok {
		return gorm.ErrRecordNotFound
	}

	if club.ID == uuid.Nil {
		club.ID = uuid.New()
	}
	club.CreatedAt = time.Now()
	club.Admins = []models.User{*creator}
	club.Members = []models.User{*creator}
	s.clubs[club.ID] = club

	creator.Clubs = append(creator.Clubs, models.Club{ID: club.ID, Name: club.Name})
	return nil
}

func (s *fakeStore) GetClub(id string) (*models.Club, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cid, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	club, ok := s.clubs[cid]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *club
	return &copied, nil
}

func (s *fakeStore) ListClubs(limit int) ([]models.Club, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	clubs := make([]models.Club, 0, len(s.clubs))
	for _, cl := range s.clubs {
		clubs = append(clubs, *cl)
		if len(clubs) == limit {
			break
		}
	}
	return clubs, nil
}

// ToggleClubMembership обновляет обе стороны связи под одним локом,
// как это делает транзакция в реальном хранилище
func (s *fakeStore) ToggleClubMembership(clubID, userID uuid.UUID) (int, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	club, ok := s.clubs[clubID]
	if !ok {
		return 0, false, gorm.ErrRecordNotFound
	}
	user, ok := s.users[userID]
	if !ok {
		return 0, false, gorm.ErrRecordNotFound
	}

	idx := -1
	for i, m := range club.Members {
		if m.ID == userID {
			idx = i
			break
		}
	}

	joined := idx == -1
	if joined {
		club.Members = append(club.Members, *user)
		user.Clubs = append(user.Clubs, models.Club{ID: club.ID, Name: club.Name})
	} else {
		club.Members = append(club.Members[:idx], club.Members[idx+1:]...)
		for i, cl := range user.Clubs {
			if cl.ID == clubID {
				user.Clubs = append(user.Clubs[:i], user.Clubs[i+1:]...)
				break
			}
		}
	}

	return len(club.Members), joined, nil
}

func (s *fakeStore) SaveEvent(event *models.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	event.CreatedAt = time.Now()
	s.events[event.ID] = event
	return nil
}

func (s *fakeStore) GetEvent(id string) (*models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	eid, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	event, ok := s.events[eid]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s.resolveEvent(event), nil
}

func (s *fakeStore) resolveEvent(event *models.Event) *models.Event {
	copied := *event
	if creator, ok := s.users[event.CreatedByID]; ok {
		copied.CreatedBy = *creator
	}
	copied.Attendees = append([]models.User(nil), event.Attendees...)
	return &copied
}

func (s *fakeStore) UpcomingEvents(limit int) ([]models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.upcomingEventsCalls++

	events := make([]*models.Event, 0, len(s.events))
	for _, e := range s.events {
		events = append(events, e)
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].StartDate.Before(events[j].StartDate)
	})
	if len(events) > limit {
		events = events[:limit]
	}

	result := make([]models.Event, len(events))
	for i, e := range events {
		result[i] = *s.resolveEvent(e)
	}
	return result, nil
}

func (s *fakeStore) ToggleEventAttendance(eventID, userID uuid.UUID) (int, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, ok := s.events[eventID]
	if !ok {
		return 0, false, gorm.ErrRecordNotFound
	}
	user, ok := s.users[userID]
	if !ok {
		return 0, false, gorm.ErrRecordNotFound
	}

	idx := -1
	for i, a := range event.Attendees {
		if a.ID == userID {
			idx = i
			break
		}
	}

	joined := idx == -1
	if joined {
		event.Attendees = append(event.Attendees, *user)
	} else {
		event.Attendees = append(event.Attendees[:idx], event.Attendees[idx+1:]...)
	}

	return len(event.Attendees), joined, nil
}

// memCache — кэш в памяти с настоящими TTL, плюс ручка для
// искусственного протухания записи
type memCache struct {
	mu      sync.Mutex
	entries map[string]memEntry
}

type memEntry struct {
	value     string
	expiresAt time.Time
}

func newMemCache() *memCache {
	return &memCache{entries: make(map[string]memEntry)}
}

func (c *memCache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || time.Now().After(e.expiresAt) {
		return "", nil
	}
	return e.value, nil
}

func (c *memCache) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = memEntry{value: value, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (c *memCache) Del(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, key := range keys {
		delete(c.entries, key)
	}
	return nil
}

func (c *memCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	return ok && time.Now().Before(e.expiresAt)
}

func (c *memCache) expire(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.expiresAt = time.Now().Add(-time.Second)
		c.entries[key] = e
	}
}

// fakeBroadcaster запоминает разосланные события
type fakeBroadcaster struct {
	mu     sync.Mutex
	events []broadcastEvent
}

type broadcastEvent struct {
	name websocket.EventName
	data interface{}
}

func (b *fakeBroadcaster) Broadcast(event websocket.EventName, data interface{}) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.events = append(b.events, broadcastEvent{name: event, data: data})
	return nil
}

func (b *fakeBroadcaster) byName(name websocket.EventName) []broadcastEvent {
	b.mu.Lock()
	defer b.mu.Unlock()

	var out []broadcastEvent
	for _, ev := range b.events {
		if ev.name == name {
			out = append(out, ev)
		}
	}
	return out
}
