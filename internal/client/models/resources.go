package models

import "strconv"

// User is a person record of the demo API (not a login account).
type User struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Address  Address `json:"address"`
	Phone    string  `json:"phone"`
	Website  string  `json:"website"`
	Company  Company `json:"company"`
}

type Address struct {
	Street  string `json:"street"`
	Suite   string `json:"suite"`
	City    string `json:"city"`
	Zipcode string `json:"zipcode"`
	Geo     Geo    `json:"geo"`
}

type Geo struct {
	Lat string `json:"lat"`
	Lng string `json:"lng"`
}

type Company struct {
	Name        string `json:"name"`
	CatchPhrase string `json:"catchPhrase"`
	BS          string `json:"bs"`
}

func (u User) RecordID() int { return u.ID }

func (u User) WithID(id int) User {
	u.ID = id
	return u
}

func (u User) Validate() error {
	return requireFields([2]string{"name", u.Name}, [2]string{"email", u.Email})
}

func (u User) SearchText() []string {
	return []string{strconv.Itoa(u.ID), u.Name, u.Username, u.Email, u.Phone, u.Website, u.Company.Name}
}

// Post is a blog post owned by a user.
type Post struct {
	UserID int    `json:"userId"`
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

func (p Post) RecordID() int { return p.ID }
func (p Post) OwnerID() int  { return p.UserID }

func (p Post) WithID(id int) Post {
	p.ID = id
	return p
}

func (p Post) Validate() error {
	return requireFields([2]string{"title", p.Title}, [2]string{"body", p.Body})
}

func (p Post) SearchText() []string {
	return []string{strconv.Itoa(p.ID), p.Title, p.Body}
}

// Album is a photo collection owned by a user.
type Album struct {
	UserID int    `json:"userId"`
	ID     int    `json:"id"`
	Title  string `json:"title"`
}

func (a Album) RecordID() int { return a.ID }
func (a Album) OwnerID() int  { return a.UserID }

func (a Album) WithID(id int) Album {
	a.ID = id
	return a
}

func (a Album) Validate() error {
	return requireFields([2]string{"title", a.Title})
}

func (a Album) SearchText() []string {
	return []string{strconv.Itoa(a.ID), a.Title}
}

// Todo is a task assigned to a user.
type Todo struct {
	UserID    int    `json:"userId"`
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

func (t Todo) RecordID() int { return t.ID }
func (t Todo) OwnerID() int  { return t.UserID }

func (t Todo) WithID(id int) Todo {
	t.ID = id
	return t
}

func (t Todo) Validate() error {
	return requireFields([2]string{"title", t.Title})
}

func (t Todo) SearchText() []string {
	return []string{strconv.Itoa(t.ID), t.Title, t.StatusLabel()}
}

// StatusLabel is the table badge text.
func (t Todo) StatusLabel() string {
	if t.Completed {
		return "Completed"
	}
	return "Pending"
}

// Comment belongs to a post. Read-only in the console.
type Comment struct {
	PostID int    `json:"postId"`
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Body   string `json:"body"`
}

// Photo belongs to an album. Read-only in the console.
type Photo struct {
	AlbumID      int    `json:"albumId"`
	ID           int    `json:"id"`
	Title        string `json:"title"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl"`
}
