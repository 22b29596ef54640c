package constants

// Roles de usuario
const (
	RoleCoach  = "coach"
	RoleClient = "client"
)

// Tipos de actividad
const (
	ActivityTypeWorkshop = "workshop"
	ActivityTypeProgram  = "program"
	ActivityTypeDocument = "document"
)

var ValidActivityTypes = []string{
	ActivityTypeWorkshop,
	ActivityTypeProgram,
	ActivityTypeDocument,
}

func IsValidActivityType(t string) bool {
	for _, v := range ValidActivityTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Estados de inscripción
const (
	EnrollmentPending  = "pending"
	EnrollmentActive   = "active"
	EnrollmentCanceled = "canceled"
)

// Estados de pago
const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentExpired  = "expired"
	PaymentCanceled = "canceled"
	PaymentDenied   = "denied"
)
