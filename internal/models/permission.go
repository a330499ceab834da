package models

// Image permission codenames that can be granted on a collection.
const (
	PermissionAddImage    = "add_image"
	PermissionChangeImage = "change_image"
	PermissionDeleteImage = "delete_image"
	PermissionChooseImage = "choose_image"
)

// Group is a set of users that share collection permissions.
type Group struct {
	ID      uint64        `gorm:"primaryKey;autoIncrement"`
	Name    string        `gorm:"size:150;uniqueIndex;not null"`
	Members []GroupMember `gorm:"constraint:OnDelete:CASCADE"`
}

// GroupMember links an Authorizer user id to a Group.
type GroupMember struct {
	GroupID uint64 `gorm:"primaryKey"`
	UserID  string `gorm:"primaryKey;size:64"`
}

// GroupCollectionPermission grants a permission on a collection (and its subtree) to a group.
type GroupCollectionPermission struct {
	ID           uint64     `gorm:"primaryKey;autoIncrement"`
	GroupID      uint64     `gorm:"not null;uniqueIndex:idx_group_collection_permission"`
	CollectionID uint64     `gorm:"not null;uniqueIndex:idx_group_collection_permission"`
	Collection   Collection `gorm:"constraint:OnDelete:CASCADE"`
	Permission   string     `gorm:"size:100;not null;uniqueIndex:idx_group_collection_permission"`
}

// TableName overrides the table name for Group
func (Group) TableName() string {
	return "user_groups"
}

// TableName overrides the table name for GroupMember
func (GroupMember) TableName() string {
	return "group_members"
}

// TableName overrides the table name for GroupCollectionPermission
func (GroupCollectionPermission) TableName() string {
	return "group_collection_permissions"
}
