// Package navigation provides the navigation state of the site and dashboard pages.
package navigation

// Link is one entry of a navigation bar.
type Link struct {
	Title string
	URL   string
}

// SiteLinks are the anchors of the landing page sections.
var SiteLinks = []Link{ //nolint:gochecknoglobals
	{Title: "Home", URL: "#home"},
	{Title: "Services", URL: "#services"},
	{Title: "About", URL: "#about"},
	{Title: "Gallery", URL: "#gallery"},
	{Title: "Contact", URL: "#contact"},
}

// BreadcrumbItem represents a single breadcrumb link.
type BreadcrumbItem struct {
	Title  string
	URL    string
	Active bool
}

// Tab is a selectable dashboard section.
type Tab struct {
	ID    string
	Title string
	URL   string
}

// Context represents the navigation context for a page.
type Context struct {
	ActiveSection string
	ActivePage    string
	Breadcrumbs   []BreadcrumbItem
	PageTitle     string
	Links         []Link
	Tabs          []Tab
}

// NewContext creates a new navigation context.
func NewContext(pageTitle, activeSection, activePage string) *Context {
	return &Context{
		PageTitle:     pageTitle,
		ActiveSection: activeSection,
		ActivePage:    activePage,
		Breadcrumbs:   make([]BreadcrumbItem, 0),
	}
}

// AddBreadcrumb adds a breadcrumb item to the context.
func (c *Context) AddBreadcrumb(title, url string, active bool) *Context {
	c.Breadcrumbs = append(c.Breadcrumbs, BreadcrumbItem{
		Title:  title,
		URL:    url,
		Active: active,
	})

	return c
}

// WithLinks sets the links of the navigation bar.
func (c *Context) WithLinks(links ...Link) *Context {
	c.Links = append(c.Links, links...)

	return c
}

// AddTab adds a dashboard tab.
func (c *Context) AddTab(id, title, url string) *Context {
	c.Tabs = append(c.Tabs, Tab{ID: id, Title: title, URL: url})

	return c
}

// IsActive checks if the given section and page match the current context.
func (c *Context) IsActive(section, page string) bool {
	return c.ActiveSection == section && c.ActivePage == page
}

// IsSectionActive checks if the given section is active.
func (c *Context) IsSectionActive(section string) bool {
	return c.ActiveSection == section
}
