package messages

import (
	"caremarket-service/internal/app/contracts"
	"caremarket-service/internal/app/models"
	"caremarket-service/internal/pkg/constvars"
	"caremarket-service/internal/pkg/exceptions"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	httpURLRegex        = regexp.MustCompile(constvars.RegexHTTPURL)
	bareWWWRegex        = regexp.MustCompile(constvars.RegexBareWWW)
	fileAttachmentRegex = regexp.MustCompile(constvars.RegexFileAttachment)
	htmlTagRegex        = regexp.MustCompile(constvars.RegexHTMLTag)
	angleBracketRegex   = regexp.MustCompile(constvars.RegexAngleBracket)
)

// Moderator validates peer messages. Checks run in a fixed order and the
// first failing check decides the rejection:
//
//  1. sender must be the authenticated identity
//  2. at most 2000 characters
//  3. no links or file references
//  4. no profanity
//  5. markup is stripped, then the result must not be empty
//
// Accepted messages are stamped with the server clock in RFC3339 UTC.
type Moderator struct {
	profanity contracts.ProfanityChecker
	now       func() time.Time
}

func NewModerator(profanity contracts.ProfanityChecker, now func() time.Time) *Moderator {
	if now == nil {
		now = time.Now
	}
	return &Moderator{profanity: profanity, now: now}
}

func (m *Moderator) Moderate(input models.MessageInput, identitySub string) (*models.ModeratedMessage, error) {
	if identitySub == "" || input.SenderID != identitySub {
		return nil, exceptions.ErrModerationIdentityMismatch()
	}

	if utf8.RuneCountInString(input.Content) > constvars.MaxMessageContentRunes {
		return nil, exceptions.ErrModerationContentTooLong()
	}

	if ContainsLink(input.Content) {
		return nil, exceptions.ErrModerationLinksNotAllowed()
	}

	if m.profanity != nil && m.profanity.IsProfane(input.Content) {
		return nil, exceptions.ErrModerationInappropriateContent()
	}

	sanitized := SanitizeContent(input.Content)
	if sanitized == "" {
		return nil, exceptions.ErrModerationEmptyAfterFiltering()
	}

	return &models.ModeratedMessage{
		SenderID:    input.SenderID,
		RecipientID: input.RecipientID,
		Content:     sanitized,
		Timestamp:   m.now().UTC().Format(time.RFC3339),
	}, nil
}

// ContainsLink reports http(s) URLs, bare www. hosts and file names with a
// blocked extension.
func ContainsLink(content string) bool {
	return httpURLRegex.MatchString(content) ||
		bareWWWRegex.MatchString(content) ||
		fileAttachmentRegex.MatchString(content)
}

// SanitizeContent strips tags, then any stray angle bracket, then trims.
func SanitizeContent(content string) string {
	stripped := htmlTagRegex.ReplaceAllString(content, "")
	stripped = angleBracketRegex.ReplaceAllString(stripped, "")
	return strings.TrimSpace(stripped)
}
