package mangadex

import (
	"time"

	"golang.org/x/text/language"

	"github.com/HiRoS-neko/MangaDexLib/internal/ordering"
)

// LocalizedString maps a language code ("en", "ja-ro") to text.
type LocalizedString map[string]string

// Get returns the text for lang, falling back to English and then to any
// available translation.
func (s LocalizedString) Get(lang string) string {
	if v, ok := s[lang]; ok {
		return v
	}
	if v, ok := s["en"]; ok {
		return v
	}
	for _, v := range s {
		return v
	}
	return ""
}

// Attributes is the decoded payload of an object. The concrete type is fixed
// by the object's type: see decoderFor for the mapping.
type Attributes interface {
	// Kind is the object type the shape was defined for. Artist and creator
	// relationships share the author shape; member and leader share the user shape.
	Kind() ObjectType
}

type MangaAttributes struct {
	Title                  LocalizedString         `json:"title" validate:"required"`
	AltTitles              []LocalizedString       `json:"altTitles"`
	Description            LocalizedString         `json:"description"`
	IsLocked               bool                    `json:"isLocked"`
	Links                  map[string]string       `json:"links"`
	OriginalLanguage       string                  `json:"originalLanguage"`
	LastVolume             *string                 `json:"lastVolume"`
	LastChapter            *string                 `json:"lastChapter"`
	PublicationDemographic *string                 `json:"publicationDemographic"`
	Status                 string                  `json:"status" validate:"required"`
	Year                   *int                    `json:"year"`
	ContentRating          string                  `json:"contentRating"`
	Tags                   []Object[TagAttributes] `json:"tags"`
	State                  string                  `json:"state"`
	CreatedAt              time.Time               `json:"createdAt" validate:"required"`
	UpdatedAt              time.Time               `json:"updatedAt"`
	Version                *int                    `json:"version" validate:"required"`
}

func (MangaAttributes) Kind() ObjectType { return ObjectTypeManga }

type ChapterAttributes struct {
	Title              *string   `json:"title"`
	Volume             *string   `json:"volume"`
	Chapter            *string   `json:"chapter"`
	Pages              int       `json:"pages"`
	TranslatedLanguage string    `json:"translatedLanguage"`
	Uploader           string    `json:"uploader"`
	ExternalURL        *string   `json:"externalUrl"`
	PublishAt          time.Time `json:"publishAt"`
	ReadableAt         time.Time `json:"readableAt"`
	CreatedAt          time.Time `json:"createdAt" validate:"required"`
	UpdatedAt          time.Time `json:"updatedAt"`
	Version            *int      `json:"version" validate:"required"`
}

func (ChapterAttributes) Kind() ObjectType { return ObjectTypeChapter }

// Key is the chapter's position in reading order.
func (c ChapterAttributes) Key() ordering.Key {
	return ordering.NewKey(c.Chapter, c.Volume)
}

// Language parses the translated language code, or returns language.Und.
func (c ChapterAttributes) Language() language.Tag {
	tag, err := language.Parse(c.TranslatedLanguage)
	if err != nil {
		return language.Und
	}
	return tag
}

type CoverAttributes struct {
	Description string    `json:"description"`
	Volume      *string   `json:"volume"`
	FileName    string    `json:"fileName" validate:"required"`
	Locale      *string   `json:"locale"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Version     *int      `json:"version" validate:"required"`
}

func (CoverAttributes) Kind() ObjectType { return ObjectTypeCoverArt }

type AuthorAttributes struct {
	Name      string          `json:"name" validate:"required"`
	ImageURL  *string         `json:"imageUrl"`
	Biography LocalizedString `json:"biography"`
	Twitter   *string         `json:"twitter"`
	Pixiv     *string         `json:"pixiv"`
	Website   *string         `json:"website"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	Version   *int            `json:"version" validate:"required"`
}

func (AuthorAttributes) Kind() ObjectType { return ObjectTypeAuthor }

type GroupAttributes struct {
	Name             string            `json:"name" validate:"required"`
	AltNames         []LocalizedString `json:"altNames"`
	Locked           *bool             `json:"locked"`
	Website          *string           `json:"website"`
	IRCServer        *string           `json:"ircServer"`
	IRCChannel       *string           `json:"ircChannel"`
	Discord          *string           `json:"discord"`
	ContactEmail     *string           `json:"contactEmail"`
	Description      *string           `json:"description"`
	Twitter          *string           `json:"twitter"`
	MangaUpdates     *string           `json:"mangaUpdates"`
	FocusedLanguages []string          `json:"focusedLanguages"`
	Official         *bool             `json:"official"`
	Verified         *bool             `json:"verified"`
	Inactive         *bool             `json:"inactive"`
	PublishDelay     *string           `json:"publishDelay"`
	CreatedAt        time.Time         `json:"createdAt" validate:"required"`
	UpdatedAt        *time.Time        `json:"updatedAt"`
	Version          *int              `json:"version" validate:"required"`
}

func (GroupAttributes) Kind() ObjectType { return ObjectTypeScanlationGroup }

type TagAttributes struct {
	Name        LocalizedString `json:"name" validate:"required"`
	Description LocalizedString `json:"description"`
	Group       string          `json:"group" validate:"required"`
	Version     int             `json:"version"`
}

func (TagAttributes) Kind() ObjectType { return ObjectTypeTag }

type UserAttributes struct {
	Username string   `json:"username" validate:"required"`
	Roles    []string `json:"roles"`
	Version  int      `json:"version"`
}

func (UserAttributes) Kind() ObjectType { return ObjectTypeUser }

type CustomListAttributes struct {
	Name       string `json:"name" validate:"required"`
	Visibility string `json:"visibility" validate:"required,oneof=public private"`
	Version    int    `json:"version"`
}

func (CustomListAttributes) Kind() ObjectType { return ObjectTypeCustomList }

// MappingAttributes links an id from the pre-v5 API to its current uuid.
type MappingAttributes struct {
	Type     string `json:"type" validate:"required"`
	LegacyID int    `json:"legacyId" validate:"required"`
	NewID    string `json:"newId" validate:"required,uuid"`
}

func (MappingAttributes) Kind() ObjectType { return ObjectTypeLegacyMapping }
