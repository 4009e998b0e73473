package mangadex

import (
	"encoding/json"
	"fmt"
)

// ObjectType is the "type" discriminator MangaDex puts on every object and
// relationship. Values the API adds later decode to ObjectTypeUnknown.
type ObjectType string

const (
	ObjectTypeUnknown         ObjectType = "unknown"
	ObjectTypeManga           ObjectType = "manga"
	ObjectTypeChapter         ObjectType = "chapter"
	ObjectTypeCoverArt        ObjectType = "cover_art"
	ObjectTypeAuthor          ObjectType = "author"
	ObjectTypeArtist          ObjectType = "artist"
	ObjectTypeScanlationGroup ObjectType = "scanlation_group"
	ObjectTypeTag             ObjectType = "tag"
	ObjectTypeUser            ObjectType = "user"
	ObjectTypeCustomList      ObjectType = "custom_list"
	ObjectTypeLegacyMapping   ObjectType = "mapping_id"
	ObjectTypeCreator         ObjectType = "creator"
	ObjectTypeMember          ObjectType = "member"
	ObjectTypeLeader          ObjectType = "leader"
	ObjectTypeAPIClient       ObjectType = "api_client"
	ObjectTypeUploadSession   ObjectType = "upload_session"
	ObjectTypeReport          ObjectType = "report"
)

var objectTypes = []ObjectType{
	ObjectTypeUnknown,
	ObjectTypeManga,
	ObjectTypeChapter,
	ObjectTypeCoverArt,
	ObjectTypeAuthor,
	ObjectTypeArtist,
	ObjectTypeScanlationGroup,
	ObjectTypeTag,
	ObjectTypeUser,
	ObjectTypeCustomList,
	ObjectTypeLegacyMapping,
	ObjectTypeCreator,
	ObjectTypeMember,
	ObjectTypeLeader,
	ObjectTypeAPIClient,
	ObjectTypeUploadSession,
	ObjectTypeReport,
}

// AllObjectTypes lists every known type, ObjectTypeUnknown included.
func AllObjectTypes() []ObjectType {
	return append([]ObjectType(nil), objectTypes...)
}

func ParseObjectType(value string) ObjectType {
	for _, t := range objectTypes {
		if string(t) == value {
			return t
		}
	}
	return ObjectTypeUnknown
}

func (t ObjectType) String() string {
	return string(t)
}

func (t *ObjectType) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("object type: %w", err)
	}
	*t = ParseObjectType(value)
	return nil
}
