package apperr

import "fmt"

// Class groups kinds by domain and category. It is used as an errors.Is
// target at catch sites that treat, say, all group validation errors alike.
// An empty Domain matches every domain.
type Class struct {
	Domain   Domain
	Category Category
}

// ClassOf returns a class sentinel.
func ClassOf(domain Domain, category Category) *Class {
	return &Class{Domain: domain, Category: category}
}

func (c *Class) Error() string {
	if c.Domain == "" {
		return fmt.Sprintf("%s error", c.Category)
	}
	return fmt.Sprintf("%s %s error", c.Domain, c.Category)
}

func (c *Class) matches(k *Kind) bool {
	if c.Domain != "" && c.Domain != k.Domain {
		return false
	}
	return c.Category == k.Shape.Category
}

// Cross-domain classes.
var (
	ErrValidation = ClassOf("", CategoryValidation)
	ErrPermission = ClassOf("", CategoryPermission)
	ErrBusiness   = ClassOf("", CategoryBusiness)
	ErrSystem     = ClassOf("", CategorySystem)
	ErrSecurity   = ClassOf("", CategorySecurity)
)
