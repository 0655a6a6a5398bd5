package models

// Collections is the admin browser allow-list: every collection the backend
// owns, in the order the dashboard displays them.
var Collections = []string{
	UsersCollection,
	CoursesCollection,
	StudentsCollection,
	InstructorsCollection,
	AssignmentsCollection,
	AttendanceCollection,
	GradesCollection,
	AnnouncementsCollection,
	ContactsCollection,
}

// KnownCollection reports whether name is one of the backend's collections.
func KnownCollection(name string) bool {
	for _, c := range Collections {
		if c == name {
			return true
		}
	}
	return false
}
