package models

// Availability is a doctor's current availability tag.
type Availability string

const (
	AvailabilityAvailable Availability = "available"
	AvailabilityBusy      Availability = "busy"
	AvailabilityOffline   Availability = "offline"
)

// Doctor is immutable reference data served by the directory.
type Doctor struct {
	ID              string       `bson:"id" json:"id"`
	Name            string       `bson:"name" json:"name"`
	Specialty       string       `bson:"specialty" json:"specialty"`
	Rating          float64      `bson:"rating" json:"rating"`
	ReviewCount     int          `bson:"reviewCount" json:"reviewCount"`
	Experience      int          `bson:"experience" json:"experience"` // years
	ConsultationFee float64      `bson:"consultationFee" json:"consultationFee"`
	Image           string       `bson:"image" json:"image"`
	Location        string       `bson:"location" json:"location"`
	Distance        string       `bson:"distance" json:"distance"`
	Availability    Availability `bson:"availability" json:"availability"`
	NextAvailable   string       `bson:"nextAvailable,omitempty" json:"nextAvailable,omitempty"`
	About           string       `bson:"about" json:"about"`
	Education       []string     `bson:"education" json:"education"`
	Languages       []string     `bson:"languages" json:"languages"`
	TotalPatients   int          `bson:"totalPatients" json:"totalPatients"`
}
