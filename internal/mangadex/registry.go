package mangadex

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
)

type decodeFunc func(raw json.RawMessage) (Attributes, error)

var validate = validator.New(validator.WithRequiredStructEnabled())

func decodeAs[T Attributes](raw json.RawMessage) (Attributes, error) {
	var attrs T
	if err := json.Unmarshal(raw, &attrs); err != nil {
		return nil, err
	}
	if err := validate.Struct(attrs); err != nil {
		return nil, err
	}
	return attrs, nil
}

// decoderFor returns the attribute decoder for t, or nil for types without a
// payload shape. Adding an ObjectType means adding a case here;
// TestDecoderForCoversEveryType fails until that is done.
func decoderFor(t ObjectType) decodeFunc {
	switch t {
	case ObjectTypeManga:
		return decodeAs[MangaAttributes]
	case ObjectTypeChapter:
		return decodeAs[ChapterAttributes]
	case ObjectTypeCoverArt:
		return decodeAs[CoverAttributes]
	case ObjectTypeAuthor, ObjectTypeArtist, ObjectTypeCreator:
		return decodeAs[AuthorAttributes]
	case ObjectTypeScanlationGroup:
		return decodeAs[GroupAttributes]
	case ObjectTypeTag:
		return decodeAs[TagAttributes]
	case ObjectTypeUser, ObjectTypeMember, ObjectTypeLeader:
		return decodeAs[UserAttributes]
	case ObjectTypeCustomList:
		return decodeAs[CustomListAttributes]
	case ObjectTypeLegacyMapping:
		return decodeAs[MappingAttributes]
	case ObjectTypeUnknown, ObjectTypeAPIClient, ObjectTypeUploadSession, ObjectTypeReport:
		return nil
	}
	return nil
}
