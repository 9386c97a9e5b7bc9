package content

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.AmericanEnglish)

var (
	nameSuffixes = []string{"ly", "ify", "Hub", "Pro"}
	namePrefixes = []string{"My", "Get", "Smart"}
)

// BrandNames expands the industry and audience words through the fixed
// pattern grid and returns up to ten unique candidates.
func BrandNames(p ParsedIdea) []string {
	industryCap := titleCaser.String(p.Industry)
	baseWords := []string{industryCap}
	for _, word := range strings.Fields(p.Audience) {
		if len(word) > 3 {
			baseWords = append(baseWords, titleCaser.String(word))
		}
		if len(baseWords) == 3 {
			break
		}
	}

	var names []string
	for _, base := range baseWords {
		for _, suffix := range nameSuffixes {
			names = append(names, base+suffix)
		}
	}
	for _, prefix := range namePrefixes {
		for i, base := range baseWords {
			if i == 2 {
				break
			}
			names = append(names, prefix+base)
		}
	}
	if len(baseWords) >= 2 {
		names = append(names, baseWords[0]+baseWords[1], baseWords[1]+baseWords[0])
	}

	seen := map[string]bool{}
	var unique []string
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		unique = append(unique, name)
		if len(unique) == 10 {
			break
		}
	}
	return unique
}

// Slogans fills the fixed template set and returns the first five.
func Slogans(p ParsedIdea) []string {
	firstFeature := p.Features[0]
	templates := []string{
		fmt.Sprintf("Empowering %s with %s solutions", p.Audience, p.Industry),
		fmt.Sprintf("Your trusted %s partner", p.Industry),
		fmt.Sprintf("Transforming %s for %s", p.Industry, p.Audience),
		fmt.Sprintf("Smart %s, Better life", p.Industry),
		fmt.Sprintf("Innovation meets %s", p.Industry),
		fmt.Sprintf("The future of %s is here", p.Industry),
		fmt.Sprintf("%s powered %s", titleCaser.String(firstFeature), p.Industry),
	}
	return templates[:5]
}

// AdCopies fills the fixed ad template set and returns the first five.
func AdCopies(p ParsedIdea) []string {
	featuresText := strings.Join(p.Features[:min(2, len(p.Features))], ", ")
	firstFeature := titleCaser.String(p.Features[0])
	templates := []string{
		fmt.Sprintf("Discover the future of %s! Perfect for %s. Download now!", p.Industry, p.Audience),
		fmt.Sprintf("Transform your %s experience with %s. Built for %s. Try it free!", p.Industry, featuresText, p.Audience),
		fmt.Sprintf("Join thousands of %s using our %s app. %s included!", p.Audience, p.Industry, firstFeature),
		fmt.Sprintf("The smart way to %s. Trusted by %s everywhere.", p.Industry, p.Audience),
		fmt.Sprintf("Revolutionize your %s journey with %s. Made for %s. Get started today!", p.Industry, featuresText, p.Audience),
	}
	return templates
}
