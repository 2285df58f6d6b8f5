package content

// Icon names understood by the page templates.
const (
	IconLocation = "location"
	IconPerson   = "person"
	IconBuilding = "building"
	IconShield   = "shield"
	IconStar     = "star"
)

func defaultSite() *Site {
	return &Site{
		Company:    "PNA Constructions",
		Tagline:    "Your trusted constructer",
		Logo:       "/images/pnalogo.png",
		FooterLogo: "/images/logowhite.png",

		Hero: Hero{
			Title: "We Build Your Dreams",
			Subtitle: "Professional construction services with quality craftsmanship and reliable delivery. " +
				"From residential to commercial projects, we bring your vision to life.",
			Background: "/images/bgimage.jpeg",
		},

		Overview: Overview{
			Title: "Overview of PNA Construction",
			Paragraphs: []string{
				"With over four decades of experience in the construction industry, PNA Construction has built a reputation " +
					"for excellence, reliability, and innovation. We specialize in delivering high-quality construction projects " +
					"that exceed our clients' expectations.",
				"Our team of skilled professionals combines traditional craftsmanship with modern techniques and cutting-edge " +
					"technology to bring your vision to life. From initial planning to final completion, we ensure every detail " +
					"is executed with precision and care.",
			},
			Stats: []Stat{
				{Value: "60+", Label: "Projects Completed"},
				{Value: "40+", Label: "Years Experience"},
				{Value: "100%", Label: "Client Satisfaction"},
				{Value: "24/7", Label: "Support Available"},
			},
		},

		Slides: []Image{
			{Src: "/images/pc1.png", Alt: "PNA Construction Project 1"},
			{Src: "/images/pc2.png", Alt: "PNA Construction Project 2"},
			{Src: "/images/IMG_1657.JPG", Alt: "PNA Construction Project 3"},
			{Src: "/images/pc4.png", Alt: "PNA Construction Project 4"},
		},

		Signature: []Feature{
			{
				Name:     "Aruppola Housing Project",
				Category: "Residential",
				Images: []Image{
					{Src: "/images/aruppolahousingproject.jpeg", Alt: "Aruppola Housing Project"},
					{Src: "/images/aruppolahousingproject1.jpeg", Alt: "Aruppola Housing Project 1"},
					{Src: "/images/aruppolahousingproject2.jpeg", Alt: "Aruppola Housing Project 2"},
					{Src: "/images/aruppolahousingproject3.jpeg", Alt: "Aruppola Housing Project 3"},
				},
				Details: []Detail{
					{Label: "Location", Value: "Dutugamunu Mawatha", Icon: IconLocation},
					{Label: "Owner", Value: "Mr. Weerarathna", Icon: IconPerson},
					{Label: "Architectural Design", Value: "Sandya Ariyarathne Associates", Icon: IconBuilding},
					{Label: "Structural Engineer", Value: "Dr. Udaya Dissanayake", Icon: IconShield},
				},
				Description: "A modern family home that balances elegance, function, and structural rigor, " +
					"delivered to specification with premium finishes.",
			},
			{
				Name:     "Ravon Restaurant & Bakery",
				Category: "Commercial",
				Images: []Image{
					{Src: "/images/ravonbakers.jpeg", Alt: "Ravon Restaurant & Bakery"},
					{Src: "/images/ravonbakers1.jpeg", Alt: "Ravon Restaurant & Bakery 1"},
					{Src: "/images/ravonbakers2.jpeg", Alt: "Ravon Restaurant & Bakery 2"},
					{Src: "/images/ravonbakers4.jpeg", Alt: "Ravon Restaurant & Bakery 4"},
				},
				Details: []Detail{
					{Label: "Location", Value: "Kaduwela", Icon: IconLocation},
					{Label: "Exterior & Interior", Value: "Int. Architect Githmi Peiris", Icon: IconBuilding},
					{Label: "Build", Value: "PNA Constructions", Icon: IconShield},
				},
				Description: "A customer-centric space using beige and pastel tones with geometric motifs " +
					"for a distinctive brand experience.",
			},
			{
				Name:     "Grand Kandyan Hotel",
				Category: "Hospitality",
				Images: []Image{
					{Src: "/images/grand1.jpg", Alt: "Grand Kandyan Hotel"},
					{Src: "/images/grand2.jpg", Alt: "Grand Kandyan Hotel 2"},
					{Src: "/images/grand3.jpg", Alt: "Grand Kandyan Hotel 3"},
					{Src: "/images/grand%204.jpg", Alt: "Grand Kandyan Hotel 4"},
				},
				Details: []Detail{
					{Label: "Location", Value: "Kandy", Icon: IconLocation},
					{Label: "Rating", Value: "5-Star Hotel", Icon: IconStar},
					{Label: "Build", Value: "PNA Constructions", Icon: IconShield},
				},
				Description: "A prestigious 5-star hotel project in the heart of Kandy, showcasing luxury hospitality " +
					"construction with attention to detail and premium finishes.",
			},
		},

		Journey: Journey{
			Title: "Our Journey",
			Text: "PNA Constructions grew from a small, hands-on team into a trusted build partner for residential and " +
				"commercial projects. Our work blends engineering discipline with thoughtful design, and our promise is " +
				"simple: deliver quality, on time, with total transparency. From single-family homes to branded spaces, " +
				"we manage the full journey (brief, design collaboration, approvals, build, finishes, and handover) so " +
				"clients feel confident at every step.",
			Background: "/images/pc4.png",
		},

		Services: []Card{
			{Title: "Residential Construction", Body: "New builds, extensions, premium finishes."},
			{Title: "Commercial & Hospitality", Body: "Shops, restaurants, office fit-outs, exterior and interior build."},
			{Title: "Renovations & Makeovers", Body: "Structural upgrades, façades, interiors."},
			{Title: "Project & Cost Management", Body: "Planning, scheduling, BOQs, site supervision, quality control, HSE compliance."},
		},

		Collaborators: []Group{
			{Title: "Architects", Names: []string{
				"Mr. Anikanga Samarasinghe",
				"Mr. Muditha Jayakodi",
				"Mr. Channa Daswatte",
				"Mr. M. Zanhar",
				"Mr. Sunil Gunawardana",
				"Mr. Ratanasiri Bandara Hearth",
				"Mr. Sandya Ariyarathne",
				"Mr. Tharindu Peiris",
			}},
			{Title: "Engineers", Names: []string{
				"Mr. J G M Wijethilaka",
				"Dr. Udaya Dissanayake",
				"Mr. Saro Weerasinghe",
				"Mr. Wickramasinghe",
			}},
		},

		Process: []Card{
			{Title: "Discovery & Brief", Body: "Understand goals, budget, and constraints."},
			{Title: "Design Collaboration", Body: "Coordinate with architects/engineers; finalize plans and BOQs."},
			{Title: "Approvals & Mobilization", Body: "Compliance, procurement, and site setup."},
			{Title: "Build & Supervision", Body: "Structural works, MEP, finishes, site safety and quality audits."},
			{Title: "Handover & Aftercare", Body: "Snag rectification, documentation, and post-handover support."},
		},

		Values: []Card{
			{Title: "Quality", Body: "Durable materials, skilled workmanship, tested methods."},
			{Title: "Safety", Body: "Strict site protocols and compliance."},
			{Title: "Transparency", Body: "Clear BOQs, schedules, and progress reporting."},
			{Title: "Sustainability", Body: "Resource-aware choices where feasible."},
		},

		Directors: []Person{
			{
				Name:  "Priyankara Kodithuwakku",
				Role:  "Managing Director",
				Photo: "/images/managing-director.png",
				Bio: "With over 39 years of experience in construction management, Priyankara leads our team with " +
					"a vision for innovation and quality. His expertise in large-scale projects has been " +
					"instrumental in PNA Construction's growth and success.",
			},
			{
				Name:  "Achintha Kodithuwakku",
				Role:  "Board of Directors",
				Photo: "/images/Director1.JPG",
				Bio: "Achintha brings 8 years of operational excellence to PNA Construction. His focus on " +
					"process optimization and client satisfaction ensures that every project is delivered " +
					"on time and exceeds expectations.",
			},
			{
				Name:  "Nayanthara Kodithuwakku",
				Role:  "Board of Directors",
				Photo: "/images/Director2.JPG",
				Bio: "Nayanthara brings extensive experience in strategic planning and business development to " +
					"PNA Construction. Her expertise in market analysis and client relations has been crucial in " +
					"expanding our project portfolio and maintaining strong client relationships.",
			},
		},

		Portfolio: []Project{
			{Name: "Devon Rest", Location: "Sangaraja Mawatha", Image: "/images/Devon_rest.jpg", Category: "Restaurant", HasImage: true},
			{Name: "Thilanka Hotel New Wing (42 rooms)", Location: "Sangamiththa Mawatha, Kandy", Image: "/images/thilanka-hotel-new-wing.jpg", Category: "Hotel", HasImage: true},
			{Name: "Devon Hotel", Location: "Ampitiya Road, Kandy", Image: "/images/devon-hotel ampitiya.jpg", Category: "Hotel", HasImage: true},
			{Name: "Devon Hotel", Location: "Dalada Veediya, Kandy", Image: "/images/devon-hotel-dalada-veediya.jpg", Category: "Hotel", HasImage: true},
			{Name: "Grand Kandyan Hotel", Location: "Lady Gorden Road, Kandy (100 rooms / 280,000 Sqft)", Image: "/images/grand-kandyan-hotel.jpg", Category: "Hotel", HasImage: true},
			{Name: "Ravon Bakers", Location: "Kaduwela", Image: "/images/Ravon-bakers.jpg", Category: "Commercial", HasImage: true},
			{Name: "Aruppola Housing Project", Location: "Dutugamunu Mawatha", Image: "/images/aruppolahousingproject.jpeg", Category: "Residential", HasImage: true},
			{Name: "Grand Kandyan Hotel", Location: "Kandy", Image: "/images/grand%204.jpg", Category: "Hotel", HasImage: true},
			{Name: "Y.M.B.A Building", Location: "Rajapihilla Mawatha, Kandy", Category: "Commercial"},
			{Name: "Sri Pushpadana Society Building", Location: "D.S Senanayake Veediya, Kandy", Category: "Commercial"},
			{Name: "Prinston Tuition Academy", Location: "Lake Road, Katukale, Kandy", Category: "Educational"},
			{Name: "Devon Hotel", Location: "Yatinuwara Veediya, Kandy", Category: "Hotel"},
			{Name: "Riverdale Hotel", Location: "Aniwatta, Kandy", Category: "Hotel"},
			{Name: "NO ZERO Building", Location: "Bahirawakanda Patumaga, Kandy", Category: "Commercial"},
			{Name: "Previous ACBT Building", Location: "Rajapihilla Mawatha, Kandy", Category: "Educational"},
			{Name: "Goonathilake Bathiks Building", Location: "Rajapihilla Mawatha, Kandy", Category: "Commercial"},
			{Name: "Prof. Nimal Senanayake House", Location: "Rajapihilla Mawatha, Kandy", Category: "Residential"},
			{Name: "Mr. Roshan Dinapala House", Location: "Rajapihilla Mawatha, Kandy (24,000 Sqft)", Category: "Residential"},
			{Name: "Dr. Saman Nanayakkara House", Location: "Rajapihilla Mawatha, Kandy", Category: "Residential"},
			{Name: "Hewage Mandiraya", Location: "Menikkubura Road, Katugastota", Category: "Commercial"},
			{Name: "Hewage Supermarket", Location: "Kurunegala Road", Category: "Commercial"},
			{Name: "Kandyan Arts & Craft Building", Location: "Peradeniya Road, Kandy", Category: "Cultural"},
			{Name: "ENZ Lab Filling Station", Location: "Katugastota Road, Kandy", Category: "Commercial"},
		},

		Contact: ContactInfo{
			Phone: "(077) 345 44 00",
			Email: "pnaconstructionspvtltd@gmail.com",
			Hours: "Mon - Fri: 7:00 AM - 6:00 PM",
		},

		Socials: []Social{
			{Name: "Facebook", URL: "https://web.facebook.com/profile.php?id=61583882222772"},
			{Name: "TikTok", URL: "https://www.tiktok.com/@pna.constructions?lang=en"},
			{Name: "Instagram", URL: "https://www.instagram.com/pna_construction?igsh=MWRzNmFjZW4zZHk0MQ=="},
		},
	}
}
