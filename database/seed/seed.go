// Package seed holds the catalogue the service ships with.
package seed

import "docbook/models"

// DemoUserEmail and DemoUserPassword sign in the seeded account.
const (
	DemoUserID       = "user-demo"
	DemoUserEmail    = "jane@docbook.dev"
	DemoUserPassword = "password123"
)

// Specialties lists the directory filter values; "All" disables the filter.
var Specialties = []string{
	"All",
	"General Medicine",
	"Cardiology",
	"Dermatology",
	"Pediatrics",
	"Orthopedics",
	"Neurology",
	"Psychiatry",
}

// Doctors returns a fresh copy of the doctor catalogue.
func Doctors() []models.Doctor {
	return []models.Doctor{
		{
			ID:              "1",
			Name:            "Dr. Sarah Johnson",
			Specialty:       "General Medicine",
			Rating:          4.8,
			ReviewCount:     127,
			Experience:      8,
			ConsultationFee: 75,
			Image:           "https://images.unsplash.com/photo-1559839734-2b71ea197ec2?w=400&h=400&fit=crop&crop=face",
			Location:        "Downtown Medical Center",
			Distance:        "0.8 km",
			Availability:    models.AvailabilityAvailable,
			NextAvailable:   "Today 2:30 PM",
			About:           "Dr. Sarah Johnson is a board-certified family medicine physician with over 8 years of experience. She specializes in preventive care, chronic disease management, and patient education.",
			Education:       []string{"MD from Harvard Medical School", "Residency at Johns Hopkins"},
			Languages:       []string{"English", "Spanish"},
			TotalPatients:   1250,
		},
		{
			ID:              "2",
			Name:            "Dr. Michael Chen",
			Specialty:       "Cardiology",
			Rating:          4.9,
			ReviewCount:     203,
			Experience:      12,
			ConsultationFee: 120,
			Image:           "https://images.unsplash.com/photo-1612349317150-e413f6a5b16d?w=400&h=400&fit=crop&crop=face",
			Location:        "Heart Care Clinic",
			Distance:        "1.2 km",
			Availability:    models.AvailabilityBusy,
			NextAvailable:   "Tomorrow 10:00 AM",
			About:           "Dr. Michael Chen is a renowned cardiologist specializing in interventional cardiology and heart disease prevention. He has published numerous research papers in cardiovascular medicine.",
			Education:       []string{"MD from Stanford University", "Fellowship in Cardiology at Mayo Clinic"},
			Languages:       []string{"English", "Mandarin"},
			TotalPatients:   2100,
		},
		{
			ID:              "3",
			Name:            "Dr. Emily Rodriguez",
			Specialty:       "Dermatology",
			Rating:          4.7,
			ReviewCount:     89,
			Experience:      6,
			ConsultationFee: 90,
			Image:           "https://images.unsplash.com/photo-1594824475317-d3e2b4b5e3b5?w=400&h=400&fit=crop&crop=face",
			Location:        "Skin Health Institute",
			Distance:        "2.1 km",
			Availability:    models.AvailabilityAvailable,
			NextAvailable:   "Today 4:15 PM",
			About:           "Dr. Emily Rodriguez is a dermatologist with expertise in medical and cosmetic dermatology. She focuses on skin cancer prevention and advanced dermatological treatments.",
			Education:       []string{"MD from UCLA", "Dermatology Residency at UCSF"},
			Languages:       []string{"English", "Spanish", "Portuguese"},
			TotalPatients:   850,
		},
		{
			ID:              "4",
			Name:            "Dr. James Wilson",
			Specialty:       "Pediatrics",
			Rating:          4.9,
			ReviewCount:     156,
			Experience:      10,
			ConsultationFee: 80,
			Image:           "https://images.unsplash.com/photo-1582750433449-648ed127bb54?w=400&h=400&fit=crop&crop=face",
			Location:        "Children's Health Center",
			Distance:        "1.5 km",
			Availability:    models.AvailabilityAvailable,
			NextAvailable:   "Today 3:00 PM",
			About:           "Dr. James Wilson is a pediatrician dedicated to providing comprehensive healthcare for children from infancy through adolescence. He specializes in developmental pediatrics.",
			Education:       []string{"MD from Johns Hopkins", "Pediatric Residency at Children's Hospital Boston"},
			Languages:       []string{"English", "French"},
			TotalPatients:   1800,
		},
	}
}

// Appointments returns the demo user's appointment history.
func Appointments() []models.Appointment {
	return []models.Appointment{
		{
			ID:          "1",
			UserID:      DemoUserID,
			DoctorID:    "1",
			DoctorName:  "Dr. Sarah Johnson",
			DoctorImage: "https://images.unsplash.com/photo-1559839734-2b71ea197ec2?w=400&h=400&fit=crop&crop=face",
			Specialty:   "General Medicine",
			Date:        "2024-01-25",
			Time:        "10:30 AM",
			Location:    "Downtown Medical Center",
			Status:      models.AppointmentStatusUpcoming,
			Type:        models.AppointmentTypeConsultation,
		},
		{
			ID:          "2",
			UserID:      DemoUserID,
			DoctorID:    "2",
			DoctorName:  "Dr. Michael Chen",
			DoctorImage: "https://images.unsplash.com/photo-1612349317150-e413f6a5b16d?w=400&h=400&fit=crop&crop=face",
			Specialty:   "Cardiology",
			Date:        "2024-01-28",
			Time:        "2:15 PM",
			Location:    "Heart Care Clinic",
			Status:      models.AppointmentStatusUpcoming,
			Type:        models.AppointmentTypeFollowUp,
		},
		{
			ID:          "3",
			UserID:      DemoUserID,
			DoctorID:    "3",
			DoctorName:  "Dr. Emily Rodriguez",
			DoctorImage: "https://images.unsplash.com/photo-1594824475317-d3e2b4b5e3b5?w=400&h=400&fit=crop&crop=face",
			Specialty:   "Dermatology",
			Date:        "2024-01-15",
			Time:        "11:00 AM",
			Location:    "Skin Health Institute",
			Status:      models.AppointmentStatusCompleted,
			Type:        models.AppointmentTypeCheckUp,
		},
	}
}

// TimeSlots returns the daily slot grid.
func TimeSlots() []models.TimeSlot {
	return []models.TimeSlot{
		{Time: "9:00 AM", Available: true},
		{Time: "9:30 AM", Available: false},
		{Time: "10:00 AM", Available: true},
		{Time: "10:30 AM", Available: true},
		{Time: "11:00 AM", Available: false},
		{Time: "11:30 AM", Available: true},
		{Time: "2:00 PM", Available: true},
		{Time: "2:30 PM", Available: true},
		{Time: "3:00 PM", Available: false},
		{Time: "3:30 PM", Available: true},
		{Time: "4:00 PM", Available: true},
		{Time: "4:30 PM", Available: true},
	}
}
