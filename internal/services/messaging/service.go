package messaging

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/KirkDiggler/dicetray/internal/services/roller"
)

// service implements the Service interface
type service struct {
	defaultLocale string
	matcher       language.Matcher
	printers      map[string]*message.Printer
}

// NewService creates a new messaging service with the built-in en-US and de-DE catalogs
func NewService(config *ServiceConfig) (Service, error) {
	builder := catalog.NewBuilder(catalog.Fallback(supportedTags[0]))
	for i, locale := range supportedLocales {
		for key, msg := range messages[locale] {
			if err := builder.SetString(supportedTags[i], string(key), msg); err != nil {
				return nil, err
			}
		}
	}

	printers := make(map[string]*message.Printer, len(supportedLocales))
	for i, locale := range supportedLocales {
		printers[locale] = message.NewPrinter(supportedTags[i], message.Catalog(builder))
	}

	s := &service{
		defaultLocale: LocaleEnglish,
		matcher:       language.NewMatcher(supportedTags),
		printers:      printers,
	}

	if config != nil && config.DefaultLocale != "" {
		s.defaultLocale = s.resolve(config.DefaultLocale)
	}

	return s, nil
}

// SupportedLocales lists the locales with a catalog
func SupportedLocales() []string {
	out := make([]string, len(supportedLocales))
	copy(out, supportedLocales)
	return out
}

// ResolveLocale maps any BCP 47 tag onto a supported locale, falling back to en-US
func ResolveLocale(locale string) string {
	return match(language.NewMatcher(supportedTags), locale, LocaleEnglish)
}

// ResolveAcceptLanguage picks the best supported locale for an Accept-Language header
func ResolveAcceptLanguage(header, fallback string) string {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	_, index, confidence := language.NewMatcher(supportedTags).Match(tags...)
	if confidence == language.No {
		return fallback
	}
	return supportedLocales[index]
}

func (s *service) resolve(locale string) string {
	return match(s.matcher, locale, s.defaultLocale)
}

func match(m language.Matcher, locale, fallback string) string {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return fallback
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return fallback
	}
	_, index, confidence := m.Match(tag)
	if confidence == language.No {
		return fallback
	}
	return supportedLocales[index]
}

func (s *service) printer(locale string) (*message.Printer, string) {
	resolved := s.resolve(locale)
	return s.printers[resolved], resolved
}

// GetRollResultMessage returns the localized title and body for a roll
func (s *service) GetRollResultMessage(ctx context.Context, input *GetRollResultMessageInput) (*GetRollResultMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	p, locale := s.printer(input.Locale)

	name := input.SetName
	if name == "" {
		name = p.Sprintf(string(KeyRollUntitled))
	}

	values := make([]string, len(input.Values))
	for i, v := range input.Values {
		values[i] = strconv.Itoa(v)
	}

	body := p.Sprintf(string(KeyRollValues), strings.Join(values, ", "))

	var totalLine string
	if input.ShowTotal {
		totalLine = p.Sprintf(string(KeyRollTotal), input.Total)
		body += "\n" + totalLine
	}

	return &GetRollResultMessageOutput{
		Title:     p.Sprintf(string(KeyRollTitle), name),
		Message:   body,
		TotalLine: totalLine,
		Locale:    locale,
	}, nil
}

// GetErrorMessage maps a service error onto a localized message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	p, locale := s.printer(input.Locale)

	return &GetErrorMessageOutput{
		Title:   p.Sprintf(string(KeyErrorTitle)),
		Message: p.Sprintf(string(errorKey(input.Err))),
		Locale:  locale,
	}, nil
}

// errorKey picks the catalog entry for a roller error
func errorKey(err error) Key {
	switch {
	case errors.Is(err, roller.ErrInvalidSides),
		errors.Is(err, roller.ErrInvalidDiceCount),
		errors.Is(err, roller.ErrInvalidFaceValue):
		return KeyErrorDice
	case errors.Is(err, roller.ErrInvalidSetCount):
		return KeyErrorSets
	case errors.Is(err, roller.ErrInvalidColor):
		return KeyErrorColor
	case errors.Is(err, roller.ErrTableNotFound),
		errors.Is(err, roller.ErrSetNotFound):
		return KeyErrorNotFound
	case errors.Is(err, roller.ErrNoRollYet):
		return KeyErrorNoRoll
	default:
		return KeyErrorGeneric
	}
}

// GetLabel returns a localized label for a message key
func (s *service) GetLabel(ctx context.Context, input *GetLabelInput) (*GetLabelOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if input.Key == "" {
		return nil, errors.New("key cannot be empty")
	}

	p, locale := s.printer(input.Locale)

	return &GetLabelOutput{
		Label:  p.Sprintf(string(input.Key), input.Args...),
		Locale: locale,
	}, nil
}
