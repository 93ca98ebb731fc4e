package thread

import (
	"context"
	"math"
	"sort"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Guyuepp/forum-api/domain"
)

// assembleThreadDetail loads the thread, then fans out per comment to fetch its like
// count and replies concurrently. Redaction and sorting happen after every fetch
// has returned, so the output does not depend on completion order. The first
// failing fetch fails the whole assembly.
func (s *Service) assembleThreadDetail(ctx context.Context, threadID string) (domain.ThreadDetail, error) {
	thread, err := s.threadRepo.GetThreadByID(ctx, threadID)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	rows, err := s.commentRepo.GetCommentsByThreadID(ctx, thread.ID)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	comments := make([]domain.CommentDetail, len(rows))
	g, gctx := errgroup.WithContext(ctx)
	for i, row := range rows {
		g.Go(func() error {
			detail, err := s.buildCommentDetail(gctx, row)
			if err != nil {
				return err
			}
			comments[i] = detail
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.ThreadDetail{}, err
	}

	sortByDate(comments, func(c domain.CommentDetail) string { return c.Date })

	return domain.NewThreadDetail(domain.Payload{
		"id":       thread.ID,
		"title":    thread.Title,
		"body":     thread.Body,
		"date":     thread.Date,
		"username": thread.Username,
		"comments": comments,
	})
}

func (s *Service) buildCommentDetail(ctx context.Context, row domain.CommentRow) (domain.CommentDetail, error) {
	var (
		likeCount int
		replyRows []domain.ReplyRow
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.commentRepo.GetCommentLikesCountByCommentID(gctx, row.ID)
		likeCount = n
		return err
	})
	g.Go(func() error {
		res, err := s.replyRepo.GetRepliesByCommentID(gctx, row.ID)
		replyRows = res
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.CommentDetail{}, err
	}

	replies := make([]domain.ReplyDetail, 0, len(replyRows))
	for _, r := range replyRows {
		content := r.Content
		if r.IsDeleted {
			content = domain.DeletedReplyContent
		}
		reply, err := domain.NewReplyDetail(domain.Payload{
			"id":       r.ID,
			"content":  content,
			"date":     r.Date,
			"username": r.Username,
		})
		if err != nil {
			return domain.CommentDetail{}, err
		}
		replies = append(replies, reply)
	}
	sortByDate(replies, func(r domain.ReplyDetail) string { return r.Date })

	content := row.Content
	if row.IsDeleted {
		content = domain.DeletedCommentContent
	}
	return domain.NewCommentDetail(domain.Payload{
		"id":        row.ID,
		"username":  row.Username,
		"date":      row.Date,
		"content":   content,
		"replies":   replies,
		"likeCount": likeCount,
	})
}

type datedItem[T any] struct {
	item T
	raw  string
	at   time.Time
	num  float64
}

// sortByDate orders items earliest first and keeps the incoming order on ties.
// Dates are compared as instants when all of them are ISO-8601 timestamps, as
// numbers when all of them are numeric, and as plain strings otherwise.
func sortByDate[T any](items []T, date func(T) string) {
	entries := make([]datedItem[T], len(items))
	allTimes, allNumbers := true, true
	for i, item := range items {
		e := datedItem[T]{item: item, raw: date(item)}
		if at, err := time.Parse(time.RFC3339Nano, e.raw); err == nil {
			e.at = at
		} else {
			allTimes = false
		}
		if n, err := strconv.ParseFloat(e.raw, 64); err == nil && !math.IsNaN(n) {
			e.num = n
		} else {
			allNumbers = false
		}
		entries[i] = e
	}

	less := func(a, b datedItem[T]) bool { return a.raw < b.raw }
	switch {
	case allTimes:
		less = func(a, b datedItem[T]) bool { return a.at.Before(b.at) }
	case allNumbers:
		less = func(a, b datedItem[T]) bool { return a.num < b.num }
	}

	sort.SliceStable(entries, func(i, j int) bool { return less(entries[i], entries[j]) })
	for i := range entries {
		items[i] = entries[i].item
	}
}
