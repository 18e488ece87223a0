package controllers

import (
	"net/http"

	"blogcomments/app/auth"
	"blogcomments/app/models"
	"blogcomments/app/repositories"
	"blogcomments/app/response"
	"blogcomments/app/serializers"
	"blogcomments/app/services"

	"github.com/gorilla/mux"
)

const (
	msgCreateBlogFailed = "Failed to create blog"
	msgGetBlogFailed    = "Failed to get blog"
)

// BlogController handles HTTP requests for blogs
type BlogController struct {
	blogService *services.BlogService
}

func NewBlogController(blogService *services.BlogService) *BlogController {
	return &BlogController{blogService: blogService}
}

func NewBlogControllerWithStore(store *repositories.Store) *BlogController {
	return NewBlogController(services.NewBlogService(store.Blogs))
}

// Create stores a blog owned by the caller
func (bc *BlogController) Create(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())
	if userID == "" {
		_ = response.Unauthorized(w)
		return
	}

	var req models.BlogRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	blog, err := bc.blogService.CreateBlog(r.Context(), userID, req)
	if err != nil {
		fail(w, r, err, msgCreateBlogFailed)
		return
	}

	serialized, err := serializers.SerializeBlog(blog)
	if err != nil {
		fail(w, r, err, msgCreateBlogFailed)
		return
	}
	_ = response.OK(w, map[string]any{"blog": serialized})
}

// Show returns one blog. A missing blog is reported like any other failure.
func (bc *BlogController) Show(w http.ResponseWriter, r *http.Request) {
	blog, err := bc.blogService.GetBlog(r.Context(), mux.Vars(r)["blogId"])
	if err != nil {
		fail(w, r, err, msgGetBlogFailed)
		return
	}

	serialized, err := serializers.SerializeBlog(blog)
	if err != nil {
		fail(w, r, err, msgGetBlogFailed)
		return
	}
	_ = response.OK(w, map[string]any{"blog": serialized})
}
