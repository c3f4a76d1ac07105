package data

// FallbackCatalog is shown when the catalog document cannot be loaded.
func FallbackCatalog() *Catalog {
	return &Catalog{
		Titles: []Title{
			{
				ID:          1,
				Name:        "Tears on a Withered Flower",
				Author:      "Author Unknown",
				Description: "A poignant story about love, loss, and redemption.",
				Cover:       "https://images.unsplash.com/photo-1544716278-ca5e3f4abd8c?w=800&auto=format&fit=crop",
				Status:      StatusOngoing,
				LastUpdated: "2024-01-25",
				Chapters: []Chapter{
					{
						ID:     1,
						Title:  "The Withered Blossom",
						Label:  "Chapter 1",
						Locked: false,
						Pages: Pages{
							"https://lh3.googleusercontent.com/pw/AP1GczOwlELI0cpiiG9XIjzTaXMWFjR5Wab6N8b31Lf8YO6bPTKfESOtIFEgWgD4mbk-YhVXQ3RHUfa09F-ei9yAQ4K_rVvHY7MtUN43Ay5UvHLJupduF9VljSB_7pph8FniqfMqVmQVL5B4YWjSz0Cg3Rk=w53-h915-s-no-gm?authuser=0",
							"https://lh3.googleusercontent.com/pw/AP1GczONEzhK9K5--5S-77rNHgNcvGXtcJHdNKoCGoGPAHLUrQvJUkHCziCtCT5lmwOIrAJgWYQST_dAHadB0_4XKNGjo4vFIK1x6MVCozJHIvdv741Rt93iae8CkXnTiCxoZp0gS9qyR2X-wYAQuI_zlXc=w55-h915-s-no-gm?authuser=0",
						},
						Date: "2024-01-01",
					},
				},
			},
		},
	}
}
