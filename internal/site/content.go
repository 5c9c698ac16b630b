package site

// Business describes the company behind the site.
type Business struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Tagline     string `json:"tagline"`
	Summary     string `json:"summary"`
	ServiceArea string `json:"service_area"`
}

type Service struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Plan is a pricing card. Price is in whole US dollars.
type Plan struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Price       int      `json:"price"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Popular     bool     `json:"popular,omitempty"`
}

type Testimonial struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Content string `json:"content"`
	Rating  int    `json:"rating"`
	Image   string `json:"image"`
}

type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type GalleryImage struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// NavLink is an anchor into the single page.
type NavLink struct {
	Label  string `json:"label"`
	Anchor string `json:"anchor"`
}

// Content is everything the marketing page renders.
type Content struct {
	Business     Business       `json:"business"`
	Navigation   []NavLink      `json:"navigation"`
	Services     []Service      `json:"services"`
	Pricing      []Plan         `json:"pricing"`
	Testimonials []Testimonial  `json:"testimonials"`
	FAQ          []FAQItem      `json:"faq"`
	Gallery      []GalleryImage `json:"gallery"`
}

// PopularPlan returns the highlighted pricing plan, if any.
func (c Content) PopularPlan() (Plan, bool) {
	for _, p := range c.Pricing {
		if p.Popular {
			return p, true
		}
	}
	return Plan{}, false
}

// DefaultContent returns a fresh copy of the site's marketing content.
func DefaultContent() Content {
	return Content{
		Business: Business{
			Name:        "Porto Solutions TV Mounting",
			Title:       "Porto Solutions TV Mounting | Professional TV Mounting Services",
			Tagline:     "Professional TV Mounting with Precision & Care",
			Summary:     "Experience premium TV installation by certified professionals. Perfect mounting, cable management, and setup, guaranteed.",
			ServiceArea: "We provide TV mounting services throughout the greater metropolitan area, including all surrounding suburbs within a 50-mile radius.",
		},
		Navigation: []NavLink{
			{Label: "Services", Anchor: "services"},
			{Label: "Our Work", Anchor: "gallery"},
			{Label: "Pricing", Anchor: "pricing"},
			{Label: "Testimonials", Anchor: "testimonials"},
			{Label: "FAQ", Anchor: "faq"},
			{Label: "Book Now", Anchor: "booking"},
			{Label: "Contact", Anchor: "contact"},
		},
		Services: []Service{
			{Title: "Standard TV Mounting", Description: `Secure mounting of TVs up to 65" on drywall with stud detection and proper anchoring.`},
			{Title: "Cable Management", Description: "Clean, professional cable management solutions to eliminate unsightly wires and cables."},
			{Title: "Commercial Installation", Description: "Specialized mounting solutions for businesses, conference rooms, and digital signage."},
			{Title: "Concealed Wiring", Description: "In-wall cable routing for a completely clean look with no visible wires."},
			{Title: "Custom Solutions", Description: "Unique mounting configurations for special requirements or difficult wall materials."},
			{Title: "Setup & Calibration", Description: "Complete TV setup, connection to devices, and professional picture calibration."},
		},
		Pricing: []Plan{
			{
				ID:          "basic",
				Title:       "Standard Mount",
				Price:       149,
				Description: "Perfect for standard TV mounting on drywall",
				Features: []string{
					`TVs up to 65"`,
					"Drywall with stud mounting",
					"Basic cable management",
					"TV leveling and secure installation",
					"Equipment setup and testing",
				},
			},
			{
				ID:          "premium",
				Title:       "Premium Mount",
				Price:       249,
				Description: "Enhanced installation with advanced features",
				Features: []string{
					`TVs up to 85"`,
					"All wall types including brick and concrete",
					"In-wall cable concealment",
					"TV leveling and secure installation",
					"Full connection of all devices",
					"Cable box/console shelf installation",
				},
				Popular: true,
			},
			{
				ID:          "custom",
				Title:       "Custom Solutions",
				Price:       349,
				Description: "For complex or specialized installations",
				Features: []string{
					"TVs of any size",
					"Custom mounting solutions",
					"Full in-wall wiring system",
					"Sound system integration",
					"Smart home setup and integration",
					"Articulating/motorized mounts",
				},
			},
		},
		Testimonials: []Testimonial{
			{ID: 1, Name: "James Wilson", Role: "Homeowner", Rating: 5,
				Content: `The technician was extremely professional and knowledgeable. They mounted my 75" TV perfectly and took the time to hide all the cables. Looks like it came with the house!`,
				Image:   "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2"},
			{ID: 2, Name: "Sarah Johnson", Role: "Interior Designer", Rating: 5,
				Content: "I recommend them to all my clients. Their attention to detail is outstanding, and they always work cleanly and efficiently. The finished look is always perfect.",
				Image:   "https://images.pexels.com/photos/774909/pexels-photo-774909.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2"},
			{ID: 3, Name: "Michael Rodriguez", Role: "Business Owner", Rating: 5,
				Content: "We had them install 6 TVs in our restaurant. The team was quick, professional, and the price was very reasonable. Will definitely use them again for our expansion.",
				Image:   "https://images.pexels.com/photos/614810/pexels-photo-614810.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2"},
			{ID: 4, Name: "Emily Chen", Role: "Homeowner", Rating: 5,
				Content: "I was worried about mounting my TV above the fireplace, but they made it look easy. They even helped connect all my devices and showed me how to use the mount. Exceptional service!",
				Image:   "https://images.pexels.com/photos/38554/girl-people-landscape-sun-38554.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2"},
			{ID: 5, Name: "Robert Thompson", Role: "Home Theater Enthusiast", Rating: 5,
				Content: "As someone who knows a lot about home theater equipment, I was impressed by the expertise of the technicians. They listened to my specific needs and delivered exactly what I wanted.",
				Image:   "https://images.pexels.com/photos/91227/pexels-photo-91227.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2"},
		},
		FAQ: []FAQItem{
			{Question: "What types of walls can you mount TVs on?", Answer: "We can mount TVs on virtually any wall type, including drywall with wood studs, brick, concrete, stone, and metal studs. Our technicians will assess your wall and recommend the best mounting solution for your specific situation."},
			{Question: "Can you hide the cables in the wall?", Answer: "Yes, we offer in-wall cable concealment for a clean, professional look. This service is included in our Premium and Custom packages, and can be added to the Standard package for an additional fee."},
			{Question: "How long does a typical TV mounting take?", Answer: "A standard TV mounting typically takes 1-2 hours to complete. More complex installations with in-wall wiring or custom solutions may take 2-4 hours. We'll provide you with a time estimate before beginning the work."},
			{Question: "Do I need to provide the mounting bracket?", Answer: "We provide high-quality mounting brackets with all our installation packages. If you already have a bracket you'd like us to use, we can install it as long as it's compatible with your TV and wall type."},
			{Question: "Is my TV too big to mount?", Answer: `We can mount TVs of virtually any size. For very large TVs (over 85"), we recommend our Premium or Custom mounting solutions which include heavy-duty hardware and additional installation measures for safety and security.`},
			{Question: "What areas do you service?", Answer: "We currently service the greater metropolitan area and surrounding suburbs within a 50-mile radius. For locations outside our standard service area, please contact us for availability and any additional travel fees."},
			{Question: "How do I prepare for my TV mounting appointment?", Answer: "Before we arrive, please ensure your TV and any related devices are unpacked. Clear the area around where you want the TV mounted. If you're unsure about the best location, don't worry, our technicians can help you determine optimal placement."},
		},
		Gallery: []GalleryImage{
			{URL: "/image4.jpeg", Title: "Living Room TV Installation", Description: `65" OLED mounted above fireplace with concealed wiring`},
			{URL: "/image5.jpeg", Title: "Home Theater Setup", Description: `85" 4K TV with surround sound system installation`},
			{URL: "/image7.jpeg", Title: "Bedroom TV Mount", Description: "Articulating mount for perfect viewing from any angle"},
			{URL: "/image9.jpeg", Title: "Office Conference Room", Description: "Dual display setup with integrated cable management"},
			{URL: "/image12.jpeg", Title: "Outdoor TV Installation", Description: "Weather-resistant mounting for patio entertainment"},
			{URL: "/image10.jpeg", Title: "Modern Apartment Setup", Description: "Clean wall mounting with hidden components"},
		},
	}
}
