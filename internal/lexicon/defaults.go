package lexicon

// Default returns the built-in lexicons. In production deployments these
// are replaced by admin-managed configuration loaded with Load; the
// defaults keep the CLI usable out of the box and anchor the tests.
func Default() Lexicons {
	return Lexicons{
		Skills: []string{
			// Programming
			"Python", "Java", "JavaScript", "TypeScript", "C++", "C#", "PHP", "Go", "Rust",
			// Web
			"HTML", "CSS", "React", "Vue", "Angular", "Node.js", "Django", "Flask",
			// BIM & architecture
			"BIM", "Revit", "AutoCAD", "Navisworks", "3ds Max", "SketchUp", "Rhinoceros",
			"ArchiCAD", "Civil 3D", "InfraWorks", "Lumion", "Enscape",
			"BIM Coordination", "Clash Detection", "Structural Design", "Quantity Surveying",
			// Project management
			"Project Management", "Agile", "Scrum", "Kanban", "Jira",
			// Data
			"SQL", "PostgreSQL", "MySQL", "MongoDB", "Redis", "Data Analysis",
			// Cloud & DevOps
			"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Terraform",
			// Design
			"Photoshop", "Illustrator", "Figma", "InDesign",
			// General
			"Microsoft Office", "Excel", "PowerPoint",
			"Communication", "Leadership", "Teamwork", "Problem Solving",
		},
		Tools: []string{
			"Revit", "AutoCAD", "Navisworks", "BIM 360", "Autodesk Construction Cloud",
			"Civil 3D", "SketchUp", "ArchiCAD", "Rhinoceros", "Grasshopper", "Dynamo",
			"Tekla Structures", "ETABS", "SAP2000", "STAAD",
			"Lumion", "Enscape", "V-Ray", "3ds Max", "Blender",
			"Procore", "PlanGrid", "Primavera", "MS Project", "Bluebeam",
			"Microsoft Office", "Adobe Creative Suite", "Photoshop", "Illustrator", "InDesign",
		},
		Locations: []string{
			"Dubai", "Abu Dhabi", "Sharjah", "Ajman", "Ras Al Khaimah", "Fujairah", "UAE",
			"Riyadh", "Jeddah", "Mecca", "Medina", "Dammam", "NEOM", "Saudi Arabia", "KSA",
			"Doha", "Lusail", "Qatar",
			"Muscat", "Salalah", "Oman",
			"Manama", "Bahrain",
			"Kuwait City", "Kuwait",
			"Al Maryah Island", "Dubai Marina", "Downtown Dubai", "Yas Island",
			"Cairo", "Alexandria", "Egypt", "Amman", "Jordan", "Beirut", "Lebanon",
			"London", "New York", "Singapore", "Mumbai", "Delhi", "India",
		},
		BuildingTypes: []string{
			"Hotel", "Residences", "Residence", "Residential", "Tower", "Villa", "Villas",
			"Mall", "Complex", "Compound", "Mixed-Use", "Mixed Use",
			"Metro", "Station", "Airport", "Terminal", "Bridge", "Highway", "Infrastructure",
			"Hospital", "Clinic", "School", "University Campus", "Mosque", "Stadium",
			"Museum", "Resort", "Marina", "Office Building", "Headquarters", "Warehouse",
			"Plant", "Factory", "Substation", "Pipeline", "District",
			"G+", "B+", "Expansion", "Development", "Project",
		},
		FalsePositiveNames: []string{
			// Education and degree terms
			"Bachelor", "Master", "PhD", "Doctorate", "Diploma", "Degree",
			"B.Sc", "M.Sc", "B.Tech", "M.Tech", "MBA", "B.Arch", "M.Arch", "B.E",
			"University", "College", "Institute", "School of",
			// Software and certification terms
			"AutoCAD", "Revit", "Navisworks", "Primavera", "Microsoft",
			"Certified", "Certification", "Certificate", "Training Course",
			// Document furniture
			"Curriculum Vitae", "Work Experience", "Key Projects", "References",
		},
		RoleEquivalents: map[string][]string{
			"bim architect":       {"bim designer", "architectural designer", "design architect"},
			"bim manager":         {"bim coordinator", "bim lead", "vdc manager"},
			"bim engineer":        {"bim modeler", "bim technician"},
			"project manager":     {"pm", "program manager", "project lead"},
			"software engineer":   {"developer", "programmer", "software developer"},
			"senior developer":    {"lead developer", "principal engineer", "staff engineer"},
			"structural engineer": {"civil engineer", "structural designer"},
		},
		GCCKeywords: []string{
			"uae", "dubai", "abu dhabi", "sharjah", "ajman", "ras al khaimah", "fujairah",
			"saudi", "ksa", "riyadh", "jeddah", "mecca", "medina", "dammam", "neom",
			"qatar", "doha", "lusail",
			"oman", "muscat", "salalah",
			"bahrain", "manama",
			"kuwait", "kuwait city",
			"gcc",
		},
		ActionVerbs: []string{
			"developed", "managed", "coordinated", "led", "designed", "created",
			"performed", "delivered", "implemented", "supervised", "prepared",
			"conducted", "reviewed", "modeled", "modelled", "reduced", "improved",
			"established", "executed", "produced", "maintained", "collaborated",
			"organized", "resolved", "handled", "supported", "trained", "directed",
		},
	}
}
