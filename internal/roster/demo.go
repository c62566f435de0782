package roster

// Demo returns the sample company: two technical leads with three and
// four engineers, and a business lead whose two accountants support them.
// The technical leads report to the business lead so bonus requests can
// be routed.
func Demo() *Roster {
	return &Roster{
		Version: CurrentVersion,
		TechnicalLeads: []TechnicalLead{
			{
				Name:    "Satya Nadella",
				Manager: "Amy Hood",
				Engineers: []Engineer{
					{Name: "Kasey", CodeAccess: true},
					{Name: "Breana"},
					{Name: "Eric"},
				},
			},
			{
				Name:    "Bill Gates",
				Manager: "Amy Hood",
				Engineers: []Engineer{
					{Name: "Winter"},
					{Name: "Libby", CodeAccess: true},
					{Name: "Gizan"},
					{Name: "Zaynah"},
				},
			},
		},
		BusinessLeads: []BusinessLead{
			{
				Name: "Amy Hood",
				Accountants: []Accountant{
					{Name: "Niky", Supports: "Satya Nadella"},
					{Name: "Andrew", Supports: "Bill Gates"},
				},
			},
		},
	}
}
