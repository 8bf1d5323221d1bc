package services

import (
	"errors"
	"iter"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remem-labs/remem/internal/core/domain"
)

var sessionBase = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func message(id string, at time.Time, from, text string) domain.ChatMessage {
	return domain.ChatMessage{
		ID:   id,
		Time: at,
		From: from,
		To:   "Me",
		Text: text,
	}
}

func messageSource(messages ...domain.ChatMessage) iter.Seq2[domain.ChatMessage, error] {
	return func(yield func(domain.ChatMessage, error) bool) {
		for _, msg := range messages {
			if !yield(msg, nil) {
				return
			}
		}
	}
}

func collectSessions(t *testing.T, sessions iter.Seq2[domain.ChatSession, error]) []domain.ChatSession {
	t.Helper()
	var out []domain.ChatSession
	for session, err := range sessions {
		require.NoError(t, err)
		out = append(out, session)
	}
	return out
}

func TestSessions_GapBoundary(t *testing.T) {
	grouper := NewSessionGrouper(wordCounter{})

	sessions := collectSessions(t, grouper.Sessions(messageSource(
		message("1", sessionBase, "Alice", "morning"),
		message("2", sessionBase.Add(time.Hour), "Me", "hello"),
		message("3", sessionBase.Add(3*time.Hour), "Alice", "afternoon"),
	)))

	require.Len(t, sessions, 2)
	assert.Equal(t, sessionBase, sessions[0].Start)
	assert.Equal(t, sessionBase.Add(time.Hour), sessions[0].End)
	assert.Equal(t, sessionBase.Add(3*time.Hour), sessions[1].Start)
	assert.Equal(t, sessionBase.Add(3*time.Hour), sessions[1].End)
}

func TestSessions_ExactGapSplits(t *testing.T) {
	grouper := NewSessionGrouper(wordCounter{}, WithGap(30*time.Minute))

	sessions := collectSessions(t, grouper.Sessions(messageSource(
		message("1", sessionBase, "Alice", "one"),
		message("2", sessionBase.Add(30*time.Minute), "Alice", "two"),
	)))

	// A distance equal to the threshold closes the session.
	assert.Len(t, sessions, 2)
}

func TestSessions_EmptyInput(t *testing.T) {
	grouper := NewSessionGrouper(wordCounter{})

	sessions := collectSessions(t, grouper.Sessions(messageSource()))

	assert.Empty(t, sessions)
}

func TestSessions_ResortsOutOfOrderBuffer(t *testing.T) {
	grouper := NewSessionGrouper(wordCounter{})

	sessions := collectSessions(t, grouper.Sessions(messageSource(
		message("2", sessionBase.Add(time.Minute), "Alice", "second"),
		message("1", sessionBase, "Alice", "first"),
	)))

	require.Len(t, sessions, 1)
	assert.Equal(t, sessionBase, sessions[0].Start)
	assert.Equal(t, sessionBase.Add(time.Minute), sessions[0].End)
	assert.Equal(t, "Alice:\n\tfirst\n\tsecond", sessions[0].Content)
}

func TestSessions_PropagatesSourceError(t *testing.T) {
	sourceErr := errors.New("bad export")
	failing := func(yield func(domain.ChatMessage, error) bool) {
		yield(domain.ChatMessage{}, sourceErr)
	}

	grouper := NewSessionGrouper(wordCounter{})
	var got error
	for _, err := range grouper.Sessions(failing) {
		got = err
	}

	assert.ErrorIs(t, got, sourceErr)
}

func TestSessions_ReplyAttachment(t *testing.T) {
	grouper := NewSessionGrouper(wordCounter{})

	target := message("10", sessionBase, "Alice", "shall we meet tomorrow")
	reply := message("11", sessionBase.Add(time.Minute), "Me", "sure")
	reply.ReplyID = "10"

	sessions := collectSessions(t, grouper.Sessions(messageSource(target, reply)))

	require.Len(t, sessions, 1)
	assert.Contains(t, sessions[0].Content, "↩[shall we meet tomorrow] sure")
}

func TestSessions_ReplyQuoteTruncated(t *testing.T) {
	grouper := NewSessionGrouper(wordCounter{})

	target := message("10", sessionBase, "Alice",
		"one two three four five six seven eight nine ten eleven twelve")
	reply := message("11", sessionBase.Add(time.Minute), "Me", "ok")
	reply.ReplyID = "10"

	sessions := collectSessions(t, grouper.Sessions(messageSource(target, reply)))

	require.Len(t, sessions, 1)
	// The word counter truncates to ten words plus the marker.
	assert.Contains(t, sessions[0].Content,
		"↩[one two three four five six seven eight nine ten…] ok")
}

func TestSessions_ReplyOutsideBufferUnattached(t *testing.T) {
	grouper := NewSessionGrouper(wordCounter{})

	// The reply target lives in the previous session.
	target := message("10", sessionBase, "Alice", "original")
	reply := message("11", sessionBase.Add(5*time.Hour), "Me", "late answer")
	reply.ReplyID = "10"

	sessions := collectSessions(t, grouper.Sessions(messageSource(target, reply)))

	require.Len(t, sessions, 2)
	assert.NotContains(t, sessions[1].Content, "↩")
	assert.Contains(t, sessions[1].Content, "late answer")
}

func TestSessions_RenderGroupsConsecutiveSenders(t *testing.T) {
	grouper := NewSessionGrouper(wordCounter{})

	sessions := collectSessions(t, grouper.Sessions(messageSource(
		message("1", sessionBase, "Alice", "first line"),
		message("2", sessionBase.Add(time.Minute), "Alice", "second line"),
		message("3", sessionBase.Add(2*time.Minute), "Me", "reply"),
		message("4", sessionBase.Add(3*time.Minute), "Alice", "back again"),
	)))

	require.Len(t, sessions, 1)
	want := strings.Join([]string{
		"Alice:",
		"\tfirst line",
		"\tsecond line",
		"Me:",
		"\treply",
		"Alice:",
		"\tback again",
	}, "\n")
	assert.Equal(t, want, sessions[0].Content)
}

func TestSessions_NameFromParticipants(t *testing.T) {
	grouper := NewSessionGrouper(wordCounter{})

	sessions := collectSessions(t, grouper.Sessions(messageSource(
		message("1", sessionBase, "Alice", "hi"),
	)))

	require.Len(t, sessions, 1)
	assert.Equal(t, "Alice & Me", sessions[0].Name)
}

func TestItems_SessionMetadata(t *testing.T) {
	grouper := NewSessionGrouper(wordCounter{})

	items := grouper.Items(grouper.Sessions(messageSource(
		message("1", sessionBase, "Alice", "hi"),
	)))

	var collected []domain.IngestItem
	for item, err := range items {
		require.NoError(t, err)
		collected = append(collected, item)
	}

	require.Len(t, collected, 1)
	assert.Equal(t, "Alice & Me", collected[0].Metadata["name"])
	assert.Equal(t, "2025-03-01", collected[0].Metadata["date"])
	assert.Equal(t, sessionBase.Unix(), collected[0].Metadata["timestamp"])
	assert.Equal(t, "Alice:\n\thi", collected[0].Text)
}
