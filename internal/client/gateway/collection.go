package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Collection is the typed client for one REST resource.
type Collection[T any] struct {
	c    *client
	name string
}

func newCollection[T any](c *client, name string) *Collection[T] {
	return &Collection[T]{c: c, name: name}
}

// Name is the resource path segment, e.g. "posts".
func (col *Collection[T]) Name() string { return col.name }

// List fetches the collection. query holds equality filters such as
// userId=1; see ByUser, ByPost and ByAlbum.
func (col *Collection[T]) List(ctx context.Context, query url.Values) (Response[[]T], error) {
	var out []T
	code, reqID, err := col.c.do(ctx, http.MethodGet, col.name, query, nil, &out)
	if err != nil {
		return Response[[]T]{}, err
	}
	if out == nil {
		out = []T{}
	}
	return Response[[]T]{StatusCode: code, Data: out, RequestID: reqID}, nil
}

// Get fetches one record by id.
func (col *Collection[T]) Get(ctx context.Context, id int) (Response[T], error) {
	return col.one(ctx, http.MethodGet, id, nil)
}

// Create posts a new record. The server decides the id.
func (col *Collection[T]) Create(ctx context.Context, rec T) (Response[T], error) {
	var out T
	code, reqID, err := col.c.do(ctx, http.MethodPost, col.name, nil, rec, &out)
	if err != nil {
		return Response[T]{}, err
	}
	return Response[T]{StatusCode: code, Data: out, RequestID: reqID}, nil
}

// Update replaces the record with the given id.
func (col *Collection[T]) Update(ctx context.Context, id int, rec T) (Response[T], error) {
	return col.one(ctx, http.MethodPut, id, rec)
}

// Delete removes the record with the given id.
func (col *Collection[T]) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return fmt.Errorf("DELETE /%s: %w", col.name, errNoID)
	}
	_, _, err := col.c.do(ctx, http.MethodDelete, col.path(id), nil, nil, nil)
	return err
}

func (col *Collection[T]) one(ctx context.Context, method string, id int, in any) (Response[T], error) {
	if id <= 0 {
		return Response[T]{}, fmt.Errorf("%s /%s: %w", method, col.name, errNoID)
	}
	var out T
	code, reqID, err := col.c.do(ctx, method, col.path(id), nil, in, &out)
	if err != nil {
		return Response[T]{}, err
	}
	return Response[T]{StatusCode: code, Data: out, RequestID: reqID}, nil
}

func (col *Collection[T]) path(id int) string {
	return col.name + "/" + strconv.Itoa(id)
}

// ByUser filters posts, albums and todos by owner.
func ByUser(id int) url.Values {
	return url.Values{"userId": {strconv.Itoa(id)}}
}

// ByPost filters comments by post.
func ByPost(id int) url.Values {
	return url.Values{"postId": {strconv.Itoa(id)}}
}

// ByAlbum filters photos by album.
func ByAlbum(id int) url.Values {
	return url.Values{"albumId": {strconv.Itoa(id)}}
}
