package models

// Senior represents a care-seeker record as normalized by ingestion.
// Coordinates may be absent when the upstream location string could not
// be parsed; such seniors cannot anchor a match request on their own.
type Senior struct {
	ID                string   `bson:"id" json:"id"`
	FamilyUserID      string   `bson:"family_user_id,omitempty" json:"family_user_id,omitempty"`
	FullName          string   `bson:"full_name" json:"full_name"`
	Age               int      `bson:"age,omitempty" json:"age,omitempty"`
	Gender            string   `bson:"gender" json:"gender"`
	Area              string   `bson:"area" json:"area"`
	Address           string   `bson:"address,omitempty" json:"address,omitempty"`
	Latitude          *float64 `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude         *float64 `bson:"longitude,omitempty" json:"longitude,omitempty"`
	MedicalConditions []string `bson:"medical_conditions" json:"medical_conditions"`
}

// HasLocation reports whether both coordinates are present.
func (s *Senior) HasLocation() bool {
	return s.Latitude != nil && s.Longitude != nil
}
