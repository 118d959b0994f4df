// Package render builds the JSON shapes shared by the admin and
// public endpoints.
package render

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/datheory/portfolio-api/internal/models"
	"github.com/datheory/portfolio-api/internal/permissions"
)

// placeholderAvatar is served when the profile has no avatar image.
const placeholderAvatar = "https://via.placeholder.com/150"

// placeholderThumbnail is served when a project has no thumbnail.
const placeholderThumbnail = "https://via.placeholder.com/600x400?text=Data+Project"

// jsonValue decodes a JSON column for embedding in a response, or
// returns fallback when the column is empty.
func jsonValue(raw datatypes.JSON, fallback any) any {
	if len(raw) == 0 {
		return fallback
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return fallback
	}
	return out
}

// stringList decodes a JSON column holding a string array.
func stringList(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return []string{}
	}
	return out
}

// allTools merges tech stack and tool entries, dropping duplicates
// case-insensitively.
func allTools(p *models.Project) []string {
	merged := append(stringList(p.TechStack), stringList(p.ToolsUsed)...)
	out := make([]string, 0, len(merged))
	seen := make(map[string]struct{}, len(merged))
	for _, tool := range merged {
		key := strings.ToLower(tool)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, tool)
	}
	return out
}

// Project renders a project entry.
func Project(p *models.Project) gin.H {
	imageURL := p.ThumbnailURL
	if imageURL == "" {
		imageURL = placeholderThumbnail
	}

	var deletedAt any
	if p.DeletedAt.Valid {
		deletedAt = p.DeletedAt.Time
	}

	return gin.H{
		"id":    p.ID,
		"title": p.Title,
		"slug":  p.Slug,

		"project_type":       p.ProjectType,
		"project_type_label": models.ProjectTypeLabel(p.ProjectType),

		"short_description": p.ShortDescription,
		"description":       p.Description,

		"tech_stack": stringList(p.TechStack),
		"tools_used": stringList(p.ToolsUsed),
		"all_tools":  allTools(p),

		"github_url":    p.GithubURL,
		"demo_url":      p.DemoURL,
		"notebook_url":  p.NotebookURL,
		"thumbnail_url": p.ThumbnailURL,
		"image_url":     imageURL,

		"has_github":   p.GithubURL != "",
		"has_demo":     p.DemoURL != "",
		"has_notebook": p.NotebookURL != "",

		"dataset_info": jsonValue(p.DatasetInfo, nil),
		"metrics":      jsonValue(p.Metrics, nil),
		"metadata":     jsonValue(p.Metadata, nil),

		"is_published":  p.IsPublished,
		"featured":      p.Featured,
		"display_order": p.DisplayOrder,

		"deleted_at":  deletedAt,
		"is_archived": p.DeletedAt.Valid,

		"created_at": p.CreatedAt,
		"updated_at": p.UpdatedAt,
	}
}

// Projects renders a project list.
func Projects(list []models.Project) []gin.H {
	out := make([]gin.H, 0, len(list))
	for i := range list {
		out = append(out, Project(&list[i]))
	}
	return out
}

// Skill renders a skill entry.
func Skill(s *models.Skill) gin.H {
	return gin.H{
		"id":   s.ID,
		"name": s.Name,

		"category":       s.Category,
		"category_label": models.SkillCategoryLabel(s.Category),
		"skill_type":     s.SkillType,

		"level":            s.Level,
		"proficiency":      s.Proficiency,
		"years_experience": s.YearsExperience,

		"icon_url": s.IconURL,

		"display_order": s.DisplayOrder,
		"is_featured":   s.IsFeatured,

		"created_at": s.CreatedAt,
		"updated_at": s.UpdatedAt,
	}
}

// Skills renders a skill list.
func Skills(list []models.Skill) []gin.H {
	out := make([]gin.H, 0, len(list))
	for i := range list {
		out = append(out, Skill(&list[i]))
	}
	return out
}

// Profile renders the public profile record.
func Profile(p *models.Profile) gin.H {
	avatar := p.AvatarURL
	if avatar == "" {
		avatar = placeholderAvatar
	}
	return gin.H{
		"id":           p.ID,
		"full_name":    p.FullName,
		"name":         p.FullName,
		"title":        p.Title,
		"bio":          p.Bio,
		"location":     p.Location,
		"avatar_url":   p.AvatarURL,
		"avatar":       avatar,
		"social_links": jsonValue(p.SocialLinks, nil),
		"contact": gin.H{
			"email": p.Email,
			"phone": p.Phone,
		},
		"links": gin.H{
			"website": p.URL,
		},
		"created_at": p.CreatedAt,
		"updated_at": p.UpdatedAt,
	}
}

// AdminAccount renders the authenticated account summary returned by
// login and the identity endpoint.
func AdminAccount(u *models.AdminUser) gin.H {
	roleName := ""
	roleDisplayName := ""
	perms := []string{}
	if u.Role != nil {
		roleName = u.Role.Name
		roleDisplayName = u.Role.DisplayName
		perms = permissions.Parse(u.Role.Permissions)
	}
	return gin.H{
		"id":                u.ID,
		"name":              u.Name,
		"email":             u.Email,
		"role":              roleName,
		"role_display_name": roleDisplayName,
		"permissions":       perms,
	}
}

// AdminUser renders a managed admin account for the user CRUD
// endpoints, with a fallback role shape when the role row is gone.
func AdminUser(u *models.AdminUser) gin.H {
	role := gin.H{
		"id":           nil,
		"name":         "unassigned",
		"display_name": "No Role Assigned",
	}
	if u.Role != nil {
		role = gin.H{
			"id":           u.Role.ID,
			"name":         u.Role.Name,
			"display_name": u.Role.DisplayName,
		}
	}
	return gin.H{
		"id":            u.ID,
		"name":          u.Name,
		"email":         u.Email,
		"role":          role,
		"is_active":     u.IsActive,
		"is_protected":  u.IsProtected,
		"last_login_at": u.LastLoginAt,
		"created_at":    u.CreatedAt,
		"updated_at":    u.UpdatedAt,
	}
}

// AdminUsers renders a managed account list.
func AdminUsers(list []models.AdminUser) []gin.H {
	out := make([]gin.H, 0, len(list))
	for i := range list {
		out = append(out, AdminUser(&list[i]))
	}
	return out
}

// ProjectTypeOptions renders the project type dropdown options.
func ProjectTypeOptions() []gin.H {
	out := make([]gin.H, 0, len(models.ProjectTypes))
	for _, value := range models.ProjectTypes {
		out = append(out, gin.H{
			"value":       value,
			"label":       models.ProjectTypeLabel(value),
			"description": models.ProjectTypeDescription(value),
		})
	}
	return out
}

// SkillCategoryOptions renders the skill category options in display
// order.
func SkillCategoryOptions() []gin.H {
	out := make([]gin.H, 0, len(models.SkillCategories))
	for _, value := range models.SkillCategories {
		out = append(out, gin.H{
			"value": value,
			"label": models.SkillCategoryLabel(value),
			"order": models.SkillCategoryOrder(value),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i]["order"].(int) < out[j]["order"].(int)
	})
	return out
}
