package services

import (
	"context"
	"errors"
	"sync"

	"github.com/duoblog/duoblog/models"
	"github.com/duoblog/duoblog/store"
)

// lookupAuthor fetches the public projection of a user. A missing or
// malformed reference yields a nil author rather than an error: the row
// already exists, its author record may simply be gone.
func lookupAuthor(ctx context.Context, users store.UserStore, userID string) (*models.PublicUser, error) {
	user, err := users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrInvalidID) {
			return nil, nil
		}
		return nil, err
	}
	return user.Public(), nil
}

// hydrateAll attaches authors to every post on the page concurrently, one
// goroutine per post. The page fetch has already completed by the time this
// runs; only the per-row lookups fan out.
func (s *postService) hydrateAll(ctx context.Context, posts []models.Post) error {
	var wg sync.WaitGroup
	errs := make([]error, len(posts))
	for i := range posts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = s.hydratePost(ctx, &posts[i])
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// hydratePost attaches the author to a post and to each of its comments.
func (s *postService) hydratePost(ctx context.Context, post *models.Post) error {
	author, err := lookupAuthor(ctx, s.store.Users, post.UserID)
	if err != nil {
		return err
	}
	post.Author = author

	for i := range post.Comments {
		author, err := lookupAuthor(ctx, s.store.Users, post.Comments[i].UserID)
		if err != nil {
			return err
		}
		post.Comments[i].Author = author
	}
	return nil
}

// hydrateComments attaches authors to a page of comments concurrently.
func hydrateComments(ctx context.Context, users store.UserStore, comments []models.Comment) error {
	var wg sync.WaitGroup
	errs := make([]error, len(comments))
	for i := range comments {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			author, err := lookupAuthor(ctx, users, comments[i].UserID)
			if err != nil {
				errs[i] = err
				return
			}
			comments[i].Author = author
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
