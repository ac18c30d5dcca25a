package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/bod/internal/client/models"
	"github.com/dmitrijs2005/bod/internal/common"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

// form prompts for record fields. An empty answer keeps the current value.
type form struct {
	reader *bufio.Reader
	w      io.Writer
}

func withCurrent(label, current string) string {
	if current == "" {
		return label
	}
	return fmt.Sprintf("%s [%s]", label, current)
}

func (f *form) text(label, current string) (string, error) {
	v, err := getSimpleText(f.reader, withCurrent(label, current), f.w)
	if err != nil {
		return "", err
	}
	if v == "" {
		return current, nil
	}
	return v, nil
}

func (f *form) multiline(label, current string) (string, error) {
	v, err := getMultiline(f.reader, withCurrent(label, current), f.w)
	if err != nil {
		return "", err
	}
	if v == "" {
		return current, nil
	}
	return v, nil
}

// owner asks for a user id. Zero means no owner.
func (f *form) owner(label string, current int) (int, error) {
	cur := ""
	if current != 0 {
		cur = strconv.Itoa(current)
	}
	v, err := f.text(label+" (user id)", cur)
	if err != nil {
		return 0, err
	}
	if v == "" {
		return 0, nil
	}
	id, err := strconv.Atoi(v)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("%w: %q is not a user id", common.ErrorValidation, v)
	}
	return id, nil
}

func (f *form) yesNo(label string, current bool) (bool, error) {
	cur := "n"
	if current {
		cur = "y"
	}
	v, err := f.text(label+" (y/n)", cur)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(v) {
	case "y", "yes", "true":
		return true, nil
	case "n", "no", "false":
		return false, nil
	}
	return false, fmt.Errorf("%w: answer y or n", common.ErrorValidation)
}

func fillUser(f *form, u models.User) (models.User, error) {
	var err error
	if u.Name, err = f.text("Name", u.Name); err != nil {
		return u, err
	}
	if u.Email, err = f.text("Email", u.Email); err != nil {
		return u, err
	}
	if u.Phone, err = f.text("Phone", u.Phone); err != nil {
		return u, err
	}
	if u.Website, err = f.text("Website", u.Website); err != nil {
		return u, err
	}
	if u.Company.Name, err = f.text("Company", u.Company.Name); err != nil {
		return u, err
	}
	return u, nil
}

func fillPost(f *form, p models.Post) (models.Post, error) {
	var err error
	if p.Title, err = f.text("Title", p.Title); err != nil {
		return p, err
	}
	if p.Body, err = f.multiline("Content", p.Body); err != nil {
		return p, err
	}
	if p.UserID, err = f.owner("Author", p.UserID); err != nil {
		return p, err
	}
	return p, nil
}

func fillAlbum(f *form, a models.Album) (models.Album, error) {
	var err error
	if a.Title, err = f.text("Title", a.Title); err != nil {
		return a, err
	}
	if a.UserID, err = f.owner("Owner", a.UserID); err != nil {
		return a, err
	}
	return a, nil
}

func fillTodo(f *form, t models.Todo) (models.Todo, error) {
	var err error
	if t.Title, err = f.text("Title", t.Title); err != nil {
		return t, err
	}
	if t.UserID, err = f.owner("Assigned To", t.UserID); err != nil {
		return t, err
	}
	if t.Completed, err = f.yesNo("Completed", t.Completed); err != nil {
		return t, err
	}
	return t, nil
}
