package web

import (
	"net/url"
	"strconv"
	"strings"
)

// URL builders shared by handlers and templates.

func indexURL() string { return "/" }

func groupURL(slug string) string { return "/group/" + url.PathEscape(slug) + "/" }

func profileURL(username string) string { return "/profile/" + url.PathEscape(username) + "/" }

func postURL(id int64) string { return "/posts/" + strconv.FormatInt(id, 10) + "/" }

func editURL(id int64) string { return "/posts/" + strconv.FormatInt(id, 10) + "/edit/" }

func createURL() string { return "/create/" }

// pageURL returns the query string selecting page n of the current list.
func pageURL(n int) string { return "?page=" + strconv.Itoa(n) }

// safeNext returns next when it is a local path, otherwise "/".
// Scheme-relative ("//host") and backslash forms are rejected.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return indexURL()
	}
	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return indexURL()
	}
	return next
}
