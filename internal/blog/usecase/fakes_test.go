package usecase

import (
	"time"

	authdomain "blogapp-backend/internal/auth/domain"
	blogdomain "blogapp-backend/internal/blog/domain"

	"github.com/google/uuid"
)

// In-memory repositories backed by a shared store, mirroring the contracts
// of the gorm implementations: Find returns (nil, nil) on a miss, blog
// deletion cascades posts, Rate applies the toggle atomically.

type store struct {
	users    map[string]*authdomain.User
	blogs    map[string]*blogdomain.Blog
	posts    map[string]*blogdomain.Post
	comments map[string]*blogdomain.Comment
	labels   map[string]blogdomain.Label
}

func newStore() *store {
	return &store{
		users:    make(map[string]*authdomain.User),
		blogs:    make(map[string]*blogdomain.Blog),
		posts:    make(map[string]*blogdomain.Post),
		comments: make(map[string]*blogdomain.Comment),
		labels:   make(map[string]blogdomain.Label),
	}
}

func (s *store) addUser(id string) *authdomain.User {
	user := &authdomain.User{ID: id, Username: id + "@example.com", Role: authdomain.RoleUser}
	s.users[id] = user
	return user
}

type fakeUserRepo struct{ s *store }

func (r *fakeUserRepo) Create(user *authdomain.User) error {
	user.ID = uuid.New().String()
	r.s.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByUsername(username string) (*authdomain.User, error) {
	for _, u := range r.s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByID(id string) (*authdomain.User, error) {
	return r.s.users[id], nil
}

func (r *fakeUserRepo) Update(user *authdomain.User) error {
	r.s.users[user.ID] = user
	return nil
}

type fakeBlogRepo struct{ s *store }

func (r *fakeBlogRepo) Create(blog *blogdomain.Blog) error {
	blog.ID = uuid.New().String()
	blog.CreatedAt = time.Now()
	r.s.blogs[blog.ID] = blog
	return nil
}

func (r *fakeBlogRepo) FindByID(id string) (*blogdomain.Blog, error) {
	return r.s.blogs[id], nil
}

func (r *fakeBlogRepo) FindByAuthorID(authorID string) ([]*blogdomain.Blog, error) {
	var blogs []*blogdomain.Blog
	for _, b := range r.s.blogs {
		if b.AuthorID == authorID {
			blogs = append(blogs, b)
		}
	}
	return blogs, nil
}

func (r *fakeBlogRepo) Update(blog *blogdomain.Blog) error {
	r.s.blogs[blog.ID] = blog
	return nil
}

func (r *fakeBlogRepo) Delete(blog *blogdomain.Blog) error {
	for id, p := range r.s.posts {
		if p.BlogID == blog.ID {
			delete(r.s.posts, id)
		}
	}
	delete(r.s.blogs, blog.ID)
	return nil
}

type fakePostRepo struct{ s *store }

func (r *fakePostRepo) Create(post *blogdomain.Post) error {
	post.ID = uuid.New().String()
	post.PublishDate = time.Now()
	r.s.posts[post.ID] = post
	return nil
}

func (r *fakePostRepo) FindByID(id string) (*blogdomain.Post, error) {
	return r.s.posts[id], nil
}

func (r *fakePostRepo) FindAll() ([]*blogdomain.Post, error) {
	var posts []*blogdomain.Post
	for _, p := range r.s.posts {
		posts = append(posts, p)
	}
	return posts, nil
}

func (r *fakePostRepo) FindByAuthorID(authorID string) ([]*blogdomain.Post, error) {
	var posts []*blogdomain.Post
	for _, p := range r.s.posts {
		if p.AuthorID == authorID {
			posts = append(posts, p)
		}
	}
	return posts, nil
}

func (r *fakePostRepo) Update(post *blogdomain.Post) error {
	r.s.posts[post.ID] = post
	return nil
}

func (r *fakePostRepo) Delete(post *blogdomain.Post) error {
	delete(r.s.posts, post.ID)
	return nil
}

func (r *fakePostRepo) Rate(postID string, user *authdomain.User, kind blogdomain.ReactionKind) (*blogdomain.Post, error) {
	post, ok := r.s.posts[postID]
	if !ok {
		return nil, nil
	}
	post.React(user, kind)
	return post, nil
}

type fakeCommentRepo struct{ s *store }

func (r *fakeCommentRepo) Create(comment *blogdomain.Comment) error {
	comment.ID = uuid.New().String()
	comment.CreatedAt = time.Now()
	r.s.comments[comment.ID] = comment
	return nil
}

type fakeLabelRepo struct{ s *store }

func (r *fakeLabelRepo) FindOrCreate(names []string) ([]blogdomain.Label, error) {
	labels := make([]blogdomain.Label, 0, len(names))
	for _, name := range names {
		label, ok := r.s.labels[name]
		if !ok {
			label = blogdomain.Label{ID: uuid.New().String(), Name: name}
			r.s.labels[name] = label
		}
		labels = append(labels, label)
	}
	return labels, nil
}
