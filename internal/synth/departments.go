package synth

// defaultDepartments labels VLANs the way corporate networks segment them.
var defaultDepartments = []string{
	"Engineering", "Marketing", "Sales", "Finance", "HR", "Operations",
	"Legal", "Support", "IT", "Research", "Facilities", "Security",
	"Logistics", "Procurement", "Training", "Guest",
}
