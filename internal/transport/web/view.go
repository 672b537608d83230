package web

import (
	"github.com/heartmarshall/yatube-backend/internal/domain"
	"github.com/heartmarshall/yatube-backend/internal/service/post"
	"github.com/heartmarshall/yatube-backend/pkg/paginate"
)

// Template names.
const (
	TmplIndex      = "index.html"
	TmplGroupList  = "group_list.html"
	TmplProfile    = "profile.html"
	TmplPostDetail = "post_detail.html"
	TmplCreatePost = "create_post.html"
	TmplLogin      = "login.html"
	TmplSignup     = "signup.html"
	TmplError      = "error.html"
)

// Base is embedded in every page.
type Base struct {
	User domain.Identity
	Path string
}

// IndexView is the home feed.
type IndexView struct {
	Base
	Page paginate.Page[domain.Post]
}

// GroupView is one group's feed.
type GroupView struct {
	Base
	Group domain.Group
	Page  paginate.Page[domain.Post]
}

// ProfileView is one author's feed.
type ProfileView struct {
	Base
	Author    domain.User
	PostCount int
	Page      paginate.Page[domain.Post]
}

// DetailView is a single post.
type DetailView struct {
	Base
	Post            domain.Post
	AuthorPostCount int
	CanEdit         bool
}

// PostFormView is the create and edit form.
type PostFormView struct {
	Base
	Form   *post.Form
	IsEdit bool
}

// AuthFormView is the login and signup form.
type AuthFormView struct {
	Base
	Username string
	Errors   map[string][]string
	Next     string
}

// FieldErrors returns the messages for one field.
func (v AuthFormView) FieldErrors(name string) []string { return v.Errors[name] }

// NonFieldErrors returns the messages that belong to the whole form.
func (v AuthFormView) NonFieldErrors() []string { return v.Errors[domain.NonFieldErrors] }

// ErrorView is the 404 and 500 page.
type ErrorView struct {
	Base
	Status  int
	Message string
}
