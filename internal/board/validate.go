package board

import (
	"log"
	"net/mail"
	"net/netip"
	"strings"
	"time"
	"unicode/utf8"
)

// Field bounds, shared with the persisted column sizes.
const (
	AuthorMin  = 2
	AuthorMax  = 15
	MessageMin = 5
	MessageMax = 1000
)

// CreateInput carries the raw submission of the create form. CaptchaOK is
// resolved by the transport layer (the challenge lives in the session);
// the validator only records its failure as one more field error.
type CreateInput struct {
	Author    string
	Email     string
	Message   string
	IP        string
	CaptchaOK bool
}

// Validator runs field and cross-field checks for post submissions. It
// collects every failure instead of stopping at the first one, so the
// form can show all problems at once.
type Validator struct {
	store PostStore
}

func NewValidator(store PostStore) *Validator {
	return &Validator{store: store}
}

// ValidateCreate applies all creation rules. The rate-limit rule runs only
// here, never on edit or delete.
func (v *Validator) ValidateCreate(in CreateInput, now time.Time) FieldErrors {
	fe := FieldErrors{}

	author := strings.TrimSpace(in.Author)
	if n := utf8.RuneCountInString(author); n < AuthorMin || n > AuthorMax {
		fe.Add("author", MsgAuthorLength)
	}

	if _, err := mail.ParseAddress(in.Email); err != nil {
		fe.Add("email", MsgEmail)
	}

	validateMessage(strings.TrimSpace(in.Message), fe)

	if _, err := netip.ParseAddr(in.IP); err != nil {
		fe.Add("ip", MsgIP)
	}

	if !in.CaptchaOK {
		fe.Add("captcha", MsgCaptcha)
	}

	last, err := v.store.FindMostRecentByIP(in.IP, true)
	if err != nil {
		// The cooldown is best-effort; a broken lookup must not block posting.
		log.Printf("validate: last-post lookup for %s failed: %v", in.IP, err)
	} else if wait, ok := CheckInterval(last, now); !ok {
		fe.Add("message", WaitMessage(wait))
	}

	return fe
}

// ValidateMessage applies the message-only rules, used when editing.
// Author, e-mail, IP and the rate limit are not re-checked on edit.
func ValidateMessage(message string) FieldErrors {
	fe := FieldErrors{}
	validateMessage(strings.TrimSpace(message), fe)
	return fe
}

func validateMessage(message string, fe FieldErrors) {
	if message == "" {
		fe.Add("message", MsgMessageEmpty)
	}
	if n := utf8.RuneCountInString(message); n < MessageMin || n > MessageMax {
		fe.Add("message", MsgMessageLength)
	}
	if tags := DisallowedTags(message); len(tags) > 0 {
		fe.Add("message", MsgTags)
	}
}
