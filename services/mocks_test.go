package services

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/duoblog/duoblog/models"
	"github.com/duoblog/duoblog/store"
)

// fakeUserStore is an in-memory UserStore keyed by hex ID.
type fakeUserStore struct {
	mu    sync.Mutex
	users []*models.User
	err   error // when set, every call fails with it
}

func (f *fakeUserStore) Create(_ context.Context, u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for _, existing := range f.users {
		if existing.Username == u.Username {
			return store.ErrDuplicate
		}
	}
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	cp := *u
	f.users = append(f.users, &cp)
	return nil
}

func (f *fakeUserStore) FindByID(_ context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, store.ErrInvalidID
	}
	for _, u := range f.users {
		if u.ID == oid {
			cp := *u
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUserStore) FindByUsername(_ context.Context, username string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUserStore) FindPage(_ context.Context, page, limit int) ([]models.User, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, 0, f.err
	}
	start := (page - 1) * limit
	if start >= len(f.users) {
		return nil, int64(len(f.users)), nil
	}
	end := start + limit
	if end > len(f.users) {
		end = len(f.users)
	}
	out := make([]models.User, 0, end-start)
	for _, u := range f.users[start:end] {
		out = append(out, *u)
	}
	return out, int64(len(f.users)), nil
}

func (f *fakeUserStore) Update(_ context.Context, id string, upd store.UserUpdate) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, store.ErrInvalidID
	}
	for _, u := range f.users {
		if u.ID != oid {
			continue
		}
		if upd.Name != nil {
			u.Name = *upd.Name
		}
		if upd.Username != nil {
			u.Username = *upd.Username
		}
		if upd.PasswordHash != nil {
			u.PasswordHash = *upd.PasswordHash
		}
		cp := *u
		return &cp, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeUserStore) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return store.ErrInvalidID
	}
	for i, u := range f.users {
		if u.ID == oid {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

// fakePostStore is an in-memory PostStore with auto-incremented IDs. When
// comments is set, deleting a post also drops its comments, mirroring the
// relational cascade.
type fakePostStore struct {
	mu       sync.Mutex
	posts    map[uint]*models.Post
	nextID   uint
	comments *fakeCommentStore
	err      error
}

func newFakePostStore(comments *fakeCommentStore) *fakePostStore {
	return &fakePostStore{posts: map[uint]*models.Post{}, comments: comments}
}

func (f *fakePostStore) Create(_ context.Context, p *models.Post) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.nextID++
	p.ID = f.nextID
	cp := *p
	f.posts[p.ID] = &cp
	return nil
}

func (f *fakePostStore) FindByID(_ context.Context, id uint) (*models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.posts[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakePostStore) FindPage(_ context.Context, page, limit int) ([]models.Post, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, 0, f.err
	}
	all := make([]models.Post, 0, len(f.posts))
	for id := uint(1); id <= f.nextID; id++ {
		if p, ok := f.posts[id]; ok {
			cp := *p
			if f.comments != nil {
				cp.Comments = f.comments.byPost(cp.ID)
			}
			all = append(all, cp)
		}
	}
	total := int64(len(all))
	start := (page - 1) * limit
	if start >= len(all) {
		return nil, total, nil
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (f *fakePostStore) Update(_ context.Context, p *models.Post) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if _, ok := f.posts[p.ID]; !ok {
		return store.ErrNotFound
	}
	cp := *p
	f.posts[p.ID] = &cp
	return nil
}

func (f *fakePostStore) Delete(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if _, ok := f.posts[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.posts, id)
	if f.comments != nil {
		f.comments.deleteByPost(id)
	}
	return nil
}

func (f *fakePostStore) DeleteByUser(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for id, p := range f.posts {
		if p.UserID == userID {
			delete(f.posts, id)
			if f.comments != nil {
				f.comments.deleteByPost(id)
			}
		}
	}
	return nil
}

// fakeCommentStore is an in-memory CommentStore with auto-incremented IDs.
type fakeCommentStore struct {
	mu       sync.Mutex
	comments map[uint]*models.Comment
	nextID   uint
	err      error
}

func newFakeCommentStore() *fakeCommentStore {
	return &fakeCommentStore{comments: map[uint]*models.Comment{}}
}

func (f *fakeCommentStore) byPost(postID uint) []models.Comment {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Comment
	for id := uint(1); id <= f.nextID; id++ {
		if c, ok := f.comments[id]; ok && c.PostID == postID {
			out = append(out, *c)
		}
	}
	return out
}

func (f *fakeCommentStore) deleteByPost(postID uint) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, c := range f.comments {
		if c.PostID == postID {
			delete(f.comments, id)
		}
	}
}

func (f *fakeCommentStore) Create(_ context.Context, c *models.Comment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.nextID++
	c.ID = f.nextID
	cp := *c
	f.comments[c.ID] = &cp
	return nil
}

func (f *fakeCommentStore) FindByID(_ context.Context, id uint) (*models.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	c, ok := f.comments[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCommentStore) FindPageByPost(_ context.Context, postID uint, page, limit int) ([]models.Comment, int64, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	all := f.byPost(postID)
	total := int64(len(all))
	start := (page - 1) * limit
	if start >= len(all) {
		return nil, total, nil
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (f *fakeCommentStore) Update(_ context.Context, c *models.Comment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if _, ok := f.comments[c.ID]; !ok {
		return store.ErrNotFound
	}
	cp := *c
	f.comments[c.ID] = &cp
	return nil
}

func (f *fakeCommentStore) Delete(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if _, ok := f.comments[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.comments, id)
	return nil
}

func (f *fakeCommentStore) DeleteByUser(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for id, c := range f.comments {
		if c.UserID == userID {
			delete(f.comments, id)
		}
	}
	return nil
}

// testStore assembles the fakes into the store facade services expect.
func testStore() (*store.Store, *fakeUserStore, *fakePostStore, *fakeCommentStore) {
	users := &fakeUserStore{}
	comments := newFakeCommentStore()
	posts := newFakePostStore(comments)
	st := &store.Store{Users: users, Posts: posts, Comments: comments}
	return st, users, posts, comments
}

// seedUser inserts a user directly and returns its hex ID.
func seedUser(f *fakeUserStore, name, username string) string {
	u := &models.User{ID: primitive.NewObjectID(), Name: name, Username: username}
	f.mu.Lock()
	f.users = append(f.users, u)
	f.mu.Unlock()
	return u.ID.Hex()
}
