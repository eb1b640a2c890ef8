package biometric

import "sort"

// DeriveEmployees folds the event list into one Employee per distinct
// employee number, sorted by name. The display name is the last normalized
// name observed for that number.
func DeriveEmployees(events []LogEvent) []Employee {
	byNo := make(map[int]*Employee)

	for _, event := range events {
		existing, ok := byNo[event.EmployeeNo]
		if !ok {
			byNo[event.EmployeeNo] = &Employee{
				Name:       event.Name,
				EmployeeNo: event.EmployeeNo,
				TotalLogs:  1,
				FirstSeen:  event.EventTime,
				LastSeen:   event.EventTime,
			}
			continue
		}

		existing.Name = event.Name
		existing.TotalLogs++
		if event.EventTime.Before(existing.FirstSeen) {
			existing.FirstSeen = event.EventTime
		}
		if event.EventTime.After(existing.LastSeen) {
			existing.LastSeen = event.EventTime
		}
	}

	employees := make([]Employee, 0, len(byNo))
	for _, employee := range byNo {
		employees = append(employees, *employee)
	}

	sort.Slice(employees, func(a, b int) bool {
		return employees[a].Name < employees[b].Name
	})

	return employees
}
