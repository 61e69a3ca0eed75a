package usecase

import (
	"errors"
	"testing"

	blogdomain "blogapp-backend/internal/blog/domain"
	blogdto "blogapp-backend/internal/blog/dto"
	"blogapp-backend/pkg/apperr"
)

func newTestFeedUsecase() (FeedUsecase, AdminUsecase, *store) {
	s := newStore()
	feed := NewFeedUsecase(&fakeUserRepo{s}, &fakePostRepo{s}, &fakeCommentRepo{s})
	admin := NewAdminUsecase(&fakeUserRepo{s}, &fakeBlogRepo{s}, &fakePostRepo{s}, &fakeLabelRepo{s})
	return feed, admin, s
}

func seedPost(t *testing.T, admin AdminUsecase, s *store, author string) *blogdomain.Post {
	t.Helper()
	s.addUser(author)
	blog, err := admin.CreateBlog(&blogdto.BlogRequest{Title: "b"}, author)
	if err != nil {
		t.Fatalf("CreateBlog: %v", err)
	}
	post, err := admin.CreatePost(blog.ID, &blogdto.PostRequest{Title: "p", Content: "c"}, author)
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	return post
}

func TestLikeDislikeMutualExclusion(t *testing.T) {
	feed, admin, s := newTestFeedUsecase()
	post := seedPost(t, admin, s, "u1")
	s.addUser("u2")

	liked, err := feed.Like(post.ID, "u2")
	if err != nil {
		t.Fatalf("Like: %v", err)
	}
	if got := liked.ReactionState("u2"); got != blogdomain.ReactionLiked {
		t.Fatalf("state after like = %q", got)
	}

	// Switching to dislike clears the like in the same operation.
	disliked, err := feed.Dislike(post.ID, "u2")
	if err != nil {
		t.Fatalf("Dislike: %v", err)
	}
	if got := disliked.ReactionState("u2"); got != blogdomain.ReactionDisliked {
		t.Fatalf("state after dislike = %q", got)
	}
	for _, u := range disliked.Likes {
		if u.ID == "u2" {
			t.Error("account present in likes after switching to dislike")
		}
	}

	neutral, err := feed.Dislike(post.ID, "u2")
	if err != nil {
		t.Fatalf("second Dislike: %v", err)
	}
	if got := neutral.ReactionState("u2"); got != blogdomain.ReactionNeutral {
		t.Errorf("state after second dislike = %q, want NEUTRAL", got)
	}
}

func TestLikeOwnPost(t *testing.T) {
	// Reactions carry no ownership check: authors may react to their own
	// posts.
	feed, admin, s := newTestFeedUsecase()
	post := seedPost(t, admin, s, "u1")

	updated, err := feed.Like(post.ID, "u1")
	if err != nil {
		t.Fatalf("Like: %v", err)
	}
	if got := updated.ReactionState("u1"); got != blogdomain.ReactionLiked {
		t.Errorf("state = %q, want LIKED", got)
	}
}

func TestRateMissingEntities(t *testing.T) {
	feed, admin, s := newTestFeedUsecase()
	post := seedPost(t, admin, s, "u1")

	if _, err := feed.Like("missing", "u1"); !errors.Is(err, apperr.ErrPostNotFound) {
		t.Errorf("Like missing post = %v, want ErrPostNotFound", err)
	}
	if _, err := feed.Like(post.ID, "ghost"); !errors.Is(err, apperr.ErrAccountNotFound) {
		t.Errorf("Like by unknown account = %v, want ErrAccountNotFound", err)
	}
	if _, err := feed.Dislike("missing", "u1"); !errors.Is(err, apperr.ErrPostNotFound) {
		t.Errorf("Dislike missing post = %v, want ErrPostNotFound", err)
	}
}

func TestAddComment(t *testing.T) {
	feed, admin, s := newTestFeedUsecase()
	post := seedPost(t, admin, s, "u1")
	s.addUser("u2")

	comment, err := feed.AddComment(post.ID, "u2", "great post")
	if err != nil {
		t.Fatalf("AddComment: %v", err)
	}
	if comment.PostID != post.ID || comment.UserID != "u2" {
		t.Errorf("comment attribution = (%q,%q), want (%q,u2)", comment.PostID, comment.UserID, post.ID)
	}
	if comment.Content != "great post" {
		t.Errorf("content = %q", comment.Content)
	}
	if len(s.comments) != 1 {
		t.Errorf("comment count = %d, want 1", len(s.comments))
	}

	if _, err := feed.AddComment("missing", "u2", "x"); !errors.Is(err, apperr.ErrPostNotFound) {
		t.Errorf("AddComment on missing post = %v, want ErrPostNotFound", err)
	}
	if _, err := feed.AddComment(post.ID, "ghost", "x"); !errors.Is(err, apperr.ErrAccountNotFound) {
		t.Errorf("AddComment by unknown account = %v, want ErrAccountNotFound", err)
	}
}

func TestGetAllPosts(t *testing.T) {
	feed, admin, s := newTestFeedUsecase()
	seedPost(t, admin, s, "u1")
	seedPost(t, admin, s, "u2")

	posts, err := feed.GetAllPosts()
	if err != nil {
		t.Fatalf("GetAllPosts: %v", err)
	}
	if len(posts) != 2 {
		t.Errorf("post count = %d, want 2", len(posts))
	}
}
