package catalog

import "github.com/mmcdole/fontpeek/internal/domain"

// fallbackFonts is the curated list used when the remote catalog is unavailable.
// Order within each category is rough popularity.
var fallbackFonts = []domain.FontDescriptor{
	// Sans
	{Family: "Inter", Category: domain.CategorySansSerif},
	{Family: "Roboto", Category: domain.CategorySansSerif},
	{Family: "Open Sans", Category: domain.CategorySansSerif},
	{Family: "Lato", Category: domain.CategorySansSerif},
	{Family: "Montserrat", Category: domain.CategorySansSerif},
	{Family: "Poppins", Category: domain.CategorySansSerif},
	{Family: "Source Sans 3", Category: domain.CategorySansSerif},
	{Family: "Nunito", Category: domain.CategorySansSerif},
	{Family: "Raleway", Category: domain.CategorySansSerif},
	{Family: "Ubuntu", Category: domain.CategorySansSerif},
	{Family: "Rubik", Category: domain.CategorySansSerif},
	{Family: "Work Sans", Category: domain.CategorySansSerif},
	{Family: "Nunito Sans", Category: domain.CategorySansSerif},
	{Family: "Fira Sans", Category: domain.CategorySansSerif},
	{Family: "Quicksand", Category: domain.CategorySansSerif},
	{Family: "Mulish", Category: domain.CategorySansSerif},
	{Family: "Barlow", Category: domain.CategorySansSerif},
	{Family: "Karla", Category: domain.CategorySansSerif},
	{Family: "Manrope", Category: domain.CategorySansSerif},
	{Family: "Outfit", Category: domain.CategorySansSerif},
	{Family: "Plus Jakarta Sans", Category: domain.CategorySansSerif},
	{Family: "DM Sans", Category: domain.CategorySansSerif},
	{Family: "Space Grotesk", Category: domain.CategorySansSerif},
	{Family: "Sora", Category: domain.CategorySansSerif},
	{Family: "Figtree", Category: domain.CategorySansSerif},
	{Family: "Albert Sans", Category: domain.CategorySansSerif},
	{Family: "Geist", Category: domain.CategorySansSerif},
	// Serif
	{Family: "Playfair Display", Category: domain.CategorySerif},
	{Family: "Merriweather", Category: domain.CategorySerif},
	{Family: "Lora", Category: domain.CategorySerif},
	{Family: "PT Serif", Category: domain.CategorySerif},
	{Family: "Source Serif 4", Category: domain.CategorySerif},
	{Family: "Libre Baskerville", Category: domain.CategorySerif},
	{Family: "EB Garamond", Category: domain.CategorySerif},
	{Family: "Cormorant Garamond", Category: domain.CategorySerif},
	{Family: "Crimson Text", Category: domain.CategorySerif},
	{Family: "Bitter", Category: domain.CategorySerif},
	{Family: "Frank Ruhl Libre", Category: domain.CategorySerif},
	{Family: "Spectral", Category: domain.CategorySerif},
	{Family: "Vollkorn", Category: domain.CategorySerif},
	{Family: "Fraunces", Category: domain.CategorySerif},
	{Family: "Newsreader", Category: domain.CategorySerif},
	{Family: "Instrument Serif", Category: domain.CategorySerif},
	// Display
	{Family: "Oswald", Category: domain.CategoryDisplay},
	{Family: "Anton", Category: domain.CategoryDisplay},
	{Family: "Bebas Neue", Category: domain.CategoryDisplay},
	{Family: "Archivo Black", Category: domain.CategoryDisplay},
	{Family: "Righteous", Category: domain.CategoryDisplay},
	{Family: "Alfa Slab One", Category: domain.CategoryDisplay},
	{Family: "Lilita One", Category: domain.CategoryDisplay},
	{Family: "Staatliches", Category: domain.CategoryDisplay},
	{Family: "Bungee", Category: domain.CategoryDisplay},
	{Family: "Big Shoulders Display", Category: domain.CategoryDisplay},
	{Family: "Fredoka", Category: domain.CategoryDisplay},
	{Family: "Titan One", Category: domain.CategoryDisplay},
	// Script
	{Family: "Dancing Script", Category: domain.CategoryHandwriting},
	{Family: "Pacifico", Category: domain.CategoryHandwriting},
	{Family: "Caveat", Category: domain.CategoryHandwriting},
	{Family: "Satisfy", Category: domain.CategoryHandwriting},
	{Family: "Great Vibes", Category: domain.CategoryHandwriting},
	{Family: "Lobster", Category: domain.CategoryHandwriting},
	{Family: "Sacramento", Category: domain.CategoryHandwriting},
	{Family: "Kalam", Category: domain.CategoryHandwriting},
	{Family: "Indie Flower", Category: domain.CategoryHandwriting},
	{Family: "Shadows Into Light", Category: domain.CategoryHandwriting},
	{Family: "Permanent Marker", Category: domain.CategoryHandwriting},
	{Family: "Amatic SC", Category: domain.CategoryHandwriting},
	// Mono
	{Family: "Fira Code", Category: domain.CategoryMonospace},
	{Family: "JetBrains Mono", Category: domain.CategoryMonospace},
	{Family: "Source Code Pro", Category: domain.CategoryMonospace},
	{Family: "Roboto Mono", Category: domain.CategoryMonospace},
	{Family: "IBM Plex Mono", Category: domain.CategoryMonospace},
	{Family: "Space Mono", Category: domain.CategoryMonospace},
	{Family: "DM Mono", Category: domain.CategoryMonospace},
	{Family: "Inconsolata", Category: domain.CategoryMonospace},
	{Family: "Ubuntu Mono", Category: domain.CategoryMonospace},
	{Family: "Cousine", Category: domain.CategoryMonospace},
}

// Fallback returns a copy of the curated fallback list
func Fallback() []domain.FontDescriptor {
	fonts := make([]domain.FontDescriptor, len(fallbackFonts))
	copy(fonts, fallbackFonts)
	return fonts
}
