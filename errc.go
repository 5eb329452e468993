// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package throwing

// Errc is the built-in POSIX-style error code enumeration. Its numeric
// values follow the Linux errno assignment; only the message table and
// the success predicate are contractual.
type Errc int

const (
	ErrcSuccess                     Errc = 0
	ErrcOperationNotPermitted       Errc = 1
	ErrcNoSuchFileOrDirectory       Errc = 2
	ErrcNoSuchProcess               Errc = 3
	ErrcInterrupted                 Errc = 4
	ErrcIOError                     Errc = 5
	ErrcNoSuchDeviceOrAddress       Errc = 6
	ErrcArgumentListTooLong         Errc = 7
	ErrcExecutableFormatError       Errc = 8
	ErrcBadFileDescriptor           Errc = 9
	ErrcNoChildProcess              Errc = 10
	ErrcResourceUnavailableTryAgain Errc = 11
	ErrcNotEnoughMemory             Errc = 12
	ErrcPermissionDenied            Errc = 13
	ErrcBadAddress                  Errc = 14
	ErrcDeviceOrResourceBusy        Errc = 16
	ErrcFileExists                  Errc = 17
	ErrcCrossDeviceLink             Errc = 18
	ErrcNoSuchDevice                Errc = 19
	ErrcNotADirectory               Errc = 20
	ErrcIsADirectory                Errc = 21
	ErrcInvalidArgument             Errc = 22
	ErrcTooManyFilesOpenInSystem    Errc = 23
	ErrcTooManyFilesOpen            Errc = 24
	ErrcInappropriateIOControl      Errc = 25
	ErrcTextFileBusy                Errc = 26
	ErrcFileTooLarge                Errc = 27
	ErrcNoSpaceOnDevice             Errc = 28
	ErrcInvalidSeek                 Errc = 29
	ErrcReadOnlyFileSystem          Errc = 30
	ErrcTooManyLinks                Errc = 31
	ErrcBrokenPipe                  Errc = 32
	ErrcArgumentOutOfDomain         Errc = 33
	ErrcResultOutOfRange            Errc = 34
	ErrcResourceDeadlockWouldOccur  Errc = 35
	ErrcFilenameTooLong             Errc = 36
	ErrcNoLockAvailable             Errc = 37
	ErrcFunctionNotSupported        Errc = 38
	ErrcDirectoryNotEmpty           Errc = 39
	ErrcTooManySymbolicLinkLevels   Errc = 40
	ErrcNoMessage                   Errc = 42
	ErrcIdentifierRemoved           Errc = 43
	ErrcNotAStream                  Errc = 60
	ErrcNoStreamResources           Errc = 63
	ErrcStreamTimeout               Errc = 62
	ErrcNoLink                      Errc = 67
	ErrcProtocolError               Errc = 71
	ErrcBadMessage                  Errc = 74
	ErrcValueTooLarge               Errc = 75
	ErrcIllegalByteSequence         Errc = 84
	ErrcNotASocket                  Errc = 88
	ErrcDestinationAddressRequired  Errc = 89
	ErrcMessageSize                 Errc = 90
	ErrcWrongProtocolType           Errc = 91
	ErrcNoProtocolOption            Errc = 92
	ErrcProtocolNotSupported        Errc = 93
	ErrcOperationNotSupported       Errc = 95
	ErrcAddressFamilyNotSupported   Errc = 97
	ErrcAddressInUse                Errc = 98
	ErrcAddressNotAvailable         Errc = 99
	ErrcNetworkDown                 Errc = 100
	ErrcNetworkUnreachable          Errc = 101
	ErrcNetworkReset                Errc = 102
	ErrcConnectionAborted           Errc = 103
	ErrcConnectionReset             Errc = 104
	ErrcNoBufferSpace               Errc = 105
	ErrcAlreadyConnected            Errc = 106
	ErrcNotConnected                Errc = 107
	ErrcTimedOut                    Errc = 110
	ErrcConnectionRefused           Errc = 111
	ErrcHostUnreachable             Errc = 113
	ErrcConnectionInProgress        Errc = 114
	ErrcOperationInProgress         Errc = 115
	ErrcOperationCanceled           Errc = 125
	ErrcOwnerDead                   Errc = 130
	ErrcStateNotRecoverable         Errc = 131
)

// ErrcDomain is the registered domain for [Errc] codes.
var ErrcDomain = DefineErrorDomain("errc", ErrcSuccess, errcMessage)

func errcMessage(code Errc) string {
	switch code {
	case ErrcAddressFamilyNotSupported:
		return "Address family not supported by protocol"
	case ErrcAddressInUse:
		return "Address already in use"
	case ErrcAddressNotAvailable:
		return "Cannot assign requested address"
	case ErrcAlreadyConnected:
		return "Transport endpoint is already connected"
	case ErrcArgumentListTooLong:
		return "Argument list too long"
	case ErrcArgumentOutOfDomain:
		return "Numerical argument out of domain"
	case ErrcBadAddress:
		return "Bad address"
	case ErrcBadFileDescriptor:
		return "Bad file descriptor"
	case ErrcBadMessage:
		return "Bad message"
	case ErrcBrokenPipe:
		return "Broken pipe"
	case ErrcConnectionAborted:
		return "Software caused connection abort"
	case ErrcConnectionInProgress:
		return "Operation already in progress"
	case ErrcConnectionRefused:
		return "Connection refused"
	case ErrcConnectionReset:
		return "Connection reset by peer"
	case ErrcCrossDeviceLink:
		return "Invalid cross-device link"
	case ErrcDestinationAddressRequired:
		return "Destination address required"
	case ErrcDeviceOrResourceBusy:
		return "Device or resource busy"
	case ErrcDirectoryNotEmpty:
		return "Directory not empty"
	case ErrcExecutableFormatError:
		return "Exec format error"
	case ErrcFileExists:
		return "File exists"
	case ErrcFileTooLarge:
		return "File too large"
	case ErrcFilenameTooLong:
		return "File name too long"
	case ErrcFunctionNotSupported:
		return "Function not implemented"
	case ErrcHostUnreachable:
		return "No route to host"
	case ErrcIdentifierRemoved:
		return "Identifier removed"
	case ErrcIllegalByteSequence:
		return "Invalid or incomplete multibyte or wide character"
	case ErrcInappropriateIOControl:
		return "Inappropriate ioctl for device"
	case ErrcInterrupted:
		return "Interrupted system call"
	case ErrcInvalidArgument:
		return "Invalid argument"
	case ErrcInvalidSeek:
		return "Illegal seek"
	case ErrcIOError:
		return "Input/output error"
	case ErrcIsADirectory:
		return "Is a directory"
	case ErrcMessageSize:
		return "Message too long"
	case ErrcNetworkDown:
		return "Network is down"
	case ErrcNetworkReset:
		return "Network dropped connection on reset"
	case ErrcNetworkUnreachable:
		return "Network is unreachable"
	case ErrcNoBufferSpace:
		return "No buffer space available"
	case ErrcNoChildProcess:
		return "No child processes"
	case ErrcNoLink:
		return "Link has been severed"
	case ErrcNoLockAvailable:
		return "No locks available"
	case ErrcNoMessage:
		return "No message of desired type"
	case ErrcNoProtocolOption:
		return "Protocol not available"
	case ErrcNoSpaceOnDevice:
		return "No space left on device"
	case ErrcNoStreamResources:
		return "Out of streams resources"
	case ErrcNoSuchDeviceOrAddress:
		return "No such device or address"
	case ErrcNoSuchDevice:
		return "No such device"
	case ErrcNoSuchFileOrDirectory:
		return "No such file or directory"
	case ErrcNoSuchProcess:
		return "No such process"
	case ErrcNotADirectory:
		return "Not a directory"
	case ErrcNotASocket:
		return "Socket operation on non-socket"
	case ErrcNotAStream:
		return "Device not a stream"
	case ErrcNotConnected:
		return "Transport endpoint is not connected"
	case ErrcNotEnoughMemory:
		return "Cannot allocate memory"
	case ErrcOperationCanceled:
		return "Operation canceled"
	case ErrcOperationInProgress:
		return "Operation now in progress"
	case ErrcOperationNotPermitted:
		return "Operation not permitted"
	case ErrcOperationNotSupported:
		return "Operation not supported"
	case ErrcOwnerDead:
		return "Owner died"
	case ErrcPermissionDenied:
		return "Permission denied"
	case ErrcProtocolError:
		return "Protocol error"
	case ErrcProtocolNotSupported:
		return "Protocol not supported"
	case ErrcReadOnlyFileSystem:
		return "Read-only file system"
	case ErrcResourceDeadlockWouldOccur:
		return "Resource deadlock avoided"
	case ErrcResourceUnavailableTryAgain:
		return "Resource temporarily unavailable"
	case ErrcResultOutOfRange:
		return "Numerical result out of range"
	case ErrcStateNotRecoverable:
		return "State not recoverable"
	case ErrcStreamTimeout:
		return "Timer expired"
	case ErrcTextFileBusy:
		return "Text file busy"
	case ErrcTimedOut:
		return "Connection timed out"
	case ErrcTooManyFilesOpenInSystem:
		return "Too many open files in system"
	case ErrcTooManyFilesOpen:
		return "Too many open files"
	case ErrcTooManyLinks:
		return "Too many links"
	case ErrcTooManySymbolicLinkLevels:
		return "Too many levels of symbolic links"
	case ErrcValueTooLarge:
		return "Value too large for defined data type"
	case ErrcWrongProtocolType:
		return "Protocol wrong type for socket"
	default:
		return "Unspecified error"
	}
}
