package dashboard

import "github.com/Arivumathi323/login/internal/models"

// Kind is the closed internal view of the open activity_type column.
// Unknown tags collapse into KindOther so forward compatibility costs
// nothing here.
type Kind int

const (
	KindOther Kind = iota
	KindTaskAdded
	KindTaskCompleted
)

func ParseKind(activityType string) Kind {
	switch activityType {
	case models.ActivityTaskAdded:
		return KindTaskAdded
	case models.ActivityTaskCompleted:
		return KindTaskCompleted
	default:
		return KindOther
	}
}

// Icon names the glyph the client renders for an activity row.
func (k Kind) Icon() string {
	switch k {
	case KindTaskAdded:
		return "plus-circle"
	case KindTaskCompleted:
		return "check"
	default:
		return "check-circle"
	}
}
