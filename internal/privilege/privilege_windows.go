//go:build windows

package privilege

import (
	"golang.org/x/sys/windows"

	"copypath/internal/log"
)

// isElevated accepts either an elevated token (UAC "Run as administrator")
// or a token that is a member of BUILTIN\Administrators.
func isElevated() bool {
	if windows.GetCurrentProcessToken().IsElevated() {
		return true
	}

	var adminSid *windows.SID
	err := windows.AllocateAndInitializeSid(
		&windows.SECURITY_NT_AUTHORITY,
		2,
		windows.SECURITY_BUILTIN_DOMAIN_RID,
		windows.DOMAIN_ALIAS_RID_ADMINS,
		0, 0, 0, 0, 0, 0,
		&adminSid)
	if err != nil {
		log.Debug(log.CatInstall, "admin SID allocation failed", "error", err)
		return false
	}
	defer windows.FreeSid(adminSid)

	// Token(0) checks the impersonation token of the calling thread, falling
	// back to the primary token.
	token := windows.Token(0)
	isMember, err := token.IsMember(adminSid)
	if err != nil {
		log.Debug(log.CatInstall, "admin membership check failed", "error", err)
		return false
	}
	return isMember
}
