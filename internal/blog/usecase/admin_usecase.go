package usecase

import (
	authrepo "blogapp-backend/internal/auth/repository"
	blogdomain "blogapp-backend/internal/blog/domain"
	blogdto "blogapp-backend/internal/blog/dto"
	"blogapp-backend/internal/blog/repository"
	"blogapp-backend/pkg/apperr"
)

// adminUsecase implements AdminUsecase interface
type adminUsecase struct {
	userRepo  authrepo.UserRepository
	blogRepo  repository.BlogRepository
	postRepo  repository.PostRepository
	labelRepo repository.LabelRepository
}

// NewAdminUsecase creates a new instance of adminUsecase
func NewAdminUsecase(userRepo authrepo.UserRepository, blogRepo repository.BlogRepository, postRepo repository.PostRepository, labelRepo repository.LabelRepository) AdminUsecase {
	return &adminUsecase{
		userRepo:  userRepo,
		blogRepo:  blogRepo,
		postRepo:  postRepo,
		labelRepo: labelRepo,
	}
}

// assertOwner is the single ownership rule applied by every mutation:
// only the recorded author of a resource may change it.
func assertOwner(resourceAuthorID, actingID string) error {
	if resourceAuthorID != actingID {
		return apperr.ErrNotAuthorized
	}
	return nil
}

func (u *adminUsecase) resolveAccount(actingID string) error {
	user, err := u.userRepo.FindByID(actingID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperr.ErrAccountNotFound
	}
	return nil
}

func (u *adminUsecase) GetBlogsByAuthor(actingID string) ([]*blogdomain.Blog, error) {
	if err := u.resolveAccount(actingID); err != nil {
		return nil, err
	}
	return u.blogRepo.FindByAuthorID(actingID)
}

func (u *adminUsecase) CreateBlog(req *blogdto.BlogRequest, actingID string) (*blogdomain.Blog, error) {
	if err := u.resolveAccount(actingID); err != nil {
		return nil, err
	}

	blog := &blogdomain.Blog{
		Title:       req.Title,
		Description: req.Description,
		AuthorID:    actingID,
	}
	if err := u.blogRepo.Create(blog); err != nil {
		return nil, err
	}
	return blog, nil
}

func (u *adminUsecase) EditBlog(blogID string, req *blogdto.BlogRequest, actingID string) (*blogdomain.Blog, error) {
	if err := u.resolveAccount(actingID); err != nil {
		return nil, err
	}

	blog, err := u.blogRepo.FindByID(blogID)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, apperr.ErrBlogNotFound
	}

	if err := assertOwner(blog.AuthorID, actingID); err != nil {
		return nil, err
	}

	blog.Title = req.Title
	blog.Description = req.Description

	if err := u.blogRepo.Update(blog); err != nil {
		return nil, err
	}
	return blog, nil
}

func (u *adminUsecase) DeleteBlog(blogID, actingID string) error {
	if err := u.resolveAccount(actingID); err != nil {
		return err
	}

	blog, err := u.blogRepo.FindByID(blogID)
	if err != nil {
		return err
	}
	if blog == nil {
		return apperr.ErrBlogNotFound
	}

	if err := assertOwner(blog.AuthorID, actingID); err != nil {
		return err
	}

	return u.blogRepo.Delete(blog)
}

func (u *adminUsecase) GetPostsByAuthor(actingID string) ([]*blogdomain.Post, error) {
	if err := u.resolveAccount(actingID); err != nil {
		return nil, err
	}
	return u.postRepo.FindByAuthorID(actingID)
}

func (u *adminUsecase) GetPost(postID string) (*blogdomain.Post, error) {
	post, err := u.postRepo.FindByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperr.ErrPostNotFound
	}
	return post, nil
}

// CreatePost requires the acting account to own the target blog; the post's
// author is fixed to the acting account and never changes afterwards.
func (u *adminUsecase) CreatePost(blogID string, req *blogdto.PostRequest, actingID string) (*blogdomain.Post, error) {
	if err := u.resolveAccount(actingID); err != nil {
		return nil, err
	}

	blog, err := u.blogRepo.FindByID(blogID)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, apperr.ErrBlogNotFound
	}

	if err := assertOwner(blog.AuthorID, actingID); err != nil {
		return nil, err
	}

	labels, err := u.labelRepo.FindOrCreate(req.Labels)
	if err != nil {
		return nil, err
	}

	post := &blogdomain.Post{
		Title:    req.Title,
		Content:  req.Content,
		BlogID:   blog.ID,
		AuthorID: actingID,
		Labels:   labels,
	}
	if err := u.postRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (u *adminUsecase) EditPost(postID string, req *blogdto.PostRequest, actingID string) (*blogdomain.Post, error) {
	if err := u.resolveAccount(actingID); err != nil {
		return nil, err
	}

	post, err := u.postRepo.FindByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperr.ErrPostNotFound
	}

	if err := assertOwner(post.AuthorID, actingID); err != nil {
		return nil, err
	}

	post.Title = req.Title
	post.Content = req.Content

	if req.Labels != nil {
		labels, err := u.labelRepo.FindOrCreate(req.Labels)
		if err != nil {
			return nil, err
		}
		post.Labels = labels
	}

	if err := u.postRepo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (u *adminUsecase) DeletePost(postID, actingID string) error {
	if err := u.resolveAccount(actingID); err != nil {
		return err
	}

	post, err := u.postRepo.FindByID(postID)
	if err != nil {
		return err
	}
	if post == nil {
		return apperr.ErrPostNotFound
	}

	if err := assertOwner(post.AuthorID, actingID); err != nil {
		return err
	}

	return u.postRepo.Delete(post)
}
