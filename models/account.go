package models

import (
	"crypto/rand"
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// Account roles. The role decides which optional fields are meaningful
// and which registration validation set applies.
const (
	RoleDoctor   = "Doctor"
	RoleGuardian = "Guardian"
	RolePatient  = "Patient"
)

// Account holds the structure for the role-polymorphic users collection in
// mongo. The document id is the generated role-prefixed account ID.
type Account struct {
	ID            string      `json:"_id" bson:"_id"`
	Role          string      `json:"role" bson:"role"`
	FullName      string      `json:"fullName" bson:"fullName"`
	Email         string      `json:"email" bson:"email"`
	Password      string      `json:"-" bson:"password"`
	ContactNumber string      `json:"contactNumber" bson:"contactNumber"`
	ProfilePic    string      `json:"profilePic" bson:"profilePic"`
	Sex           string      `json:"sex" bson:"sex"`
	DateOfBirth   string      `json:"dateOfBirth" bson:"dateOfBirth"`
	CreatedAt     interface{} `json:"createdAt" bson:"createdAt"`

	// Doctor fields
	DoctorID       string `json:"DoctorID,omitempty" bson:"doctorID,omitempty"`
	Specialization string `json:"specialization,omitempty" bson:"specialization,omitempty"`
	LicenseNumber  string `json:"licenseNumber,omitempty" bson:"licenseNumber,omitempty"`
	Hospital       string `json:"hospital,omitempty" bson:"hospital,omitempty"`

	// Guardian fields
	GuardianID            string `json:"guardianID,omitempty" bson:"guardianID,omitempty"`
	RelationshipToPatient string `json:"relationship_to_patient,omitempty" bson:"relationship_to_patient,omitempty"`

	// Patient fields
	PatientID        string `json:"patientID,omitempty" bson:"patientID,omitempty"`
	MedicalCondition string `json:"medical_condition,omitempty" bson:"medical_condition,omitempty"`
	AssignedDoctorID string `json:"assignedDoctorId,omitempty" bson:"assignedDoctorId,omitempty"`
	GuardianRefID    string `json:"guardianId,omitempty" bson:"guardianId,omitempty"`
}

// RoleIDField returns the mongo field that carries the role-specific ID for
// the given role, used to resolve linked doctor/guardian profiles.
func RoleIDField(role string) string {
	switch role {
	case RoleDoctor:
		return "doctorID"
	case RoleGuardian:
		return "guardianID"
	default:
		return "patientID"
	}
}

const accountIDCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var rolePrefixes = map[string]string{
	RoleDoctor:   "DOC",
	RoleGuardian: "GAR",
	RolePatient:  "PAT",
}

// GenerateAccountID returns a role-prefixed account ID of the form
// {PREFIX}-{6 uppercase alphanumerics}. Uniqueness is probabilistic, there
// is no collision check.
func GenerateAccountID(role string) string {
	prefix, ok := rolePrefixes[role]
	if !ok {
		prefix = "PAT"
	}
	b := make([]byte, 6)
	_, _ = rand.Read(b)
	for i := range b {
		b[i] = accountIDCharset[int(b[i])%len(accountIDCharset)]
	}
	return prefix + "-" + string(b)
}

// HashPassword hashes a password for storage. When plaintext compatibility
// mode is on the password is stored as-is, matching legacy records.
func HashPassword(password string, plaintext bool) (string, error) {
	if plaintext {
		return password, nil
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword compares a stored password against the supplied one. The
// bcrypt path is constant-time by construction; the plaintext compatibility
// path reproduces the legacy equality comparison.
func VerifyPassword(stored, supplied string, plaintext bool) error {
	if plaintext {
		if subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) != 1 {
			return ErrIncorrectPassword
		}
		return nil
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)); err != nil {
		return ErrIncorrectPassword
	}
	return nil
}
