package rbac

// Simple default policy. Expand as needed.
var RolePermissions = map[string][]string{
	"student": {
		"challenge:view",
		"question:view",
		"answer:submit",
		"progress:view-own",
		"user:change_password",
	},
	"teacher": {
		"challenge:view",
		"question:view",
		"answer:submit",
		"progress:view-own",
		"progress:view-all",
		"users:bulk_upsert",
		"users:list",
		"user:change_password",
	},
	"admin": {
		"*", // everything
	},
}
