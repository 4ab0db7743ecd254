package native

// FILEOPENDIALOGOPTIONS bit flags accepted in the Options field of dialog
// parameters. Names and values follow the shobjidl_core enumeration; invalid
// combinations cause the native layer to reject SetOptions or Show.
const (
	FOS_OVERWRITEPROMPT        uint32 = 0x00000002
	FOS_STRICTFILETYPES        uint32 = 0x00000004
	FOS_NOCHANGEDIR            uint32 = 0x00000008
	FOS_PICKFOLDERS            uint32 = 0x00000020
	FOS_FORCEFILESYSTEM        uint32 = 0x00000040
	FOS_ALLNONSTORAGEITEMS     uint32 = 0x00000080
	FOS_NOVALIDATE             uint32 = 0x00000100
	FOS_ALLOWMULTISELECT       uint32 = 0x00000200
	FOS_PATHMUSTEXIST          uint32 = 0x00000800
	FOS_FILEMUSTEXIST          uint32 = 0x00001000
	FOS_CREATEPROMPT           uint32 = 0x00002000
	FOS_SHAREAWARE             uint32 = 0x00004000
	FOS_NOREADONLYRETURN       uint32 = 0x00008000
	FOS_NOTESTFILECREATE       uint32 = 0x00010000
	FOS_HIDEMRUPLACES          uint32 = 0x00020000
	FOS_HIDEPINNEDPLACES       uint32 = 0x00040000
	FOS_NODEREFERENCELINKS     uint32 = 0x00100000
	FOS_DONTADDTORECENT        uint32 = 0x02000000
	FOS_FORCESHOWHIDDEN        uint32 = 0x10000000
	FOS_DEFAULTNOMINIMODE      uint32 = 0x20000000
	FOS_FORCEPREVIEWPANEON     uint32 = 0x40000000
	FOS_SUPPORTSTREAMABLEITEMS uint32 = 0x80000000
)
