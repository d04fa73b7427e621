package vocab

// Link relation types from the IANA registry
// (https://www.iana.org/assignments/link-relations/link-relations.xhtml).
const (
	RelAbout                  = "about"
	RelACL                    = "acl"
	RelAlternate              = "alternate"
	RelAmphtml                = "amphtml"
	RelAppendix               = "appendix"
	RelAppleTouchIcon         = "apple-touch-icon"
	RelAppleTouchStartupImage = "apple-touch-startup-image"
	RelArchives               = "archives"
	RelAuthor                 = "author"
	RelBlockedBy              = "blocked-by"
	RelBookmark               = "bookmark"
	RelCanonical              = "canonical"
	RelChapter                = "chapter"
	RelCiteAs                 = "cite-as"
	RelCollection             = "collection"
	RelContents               = "contents"
	RelConvertedFrom          = "convertedFrom"
	RelCopyright              = "copyright"
	RelCreateForm             = "create-form"
	RelCurrent                = "current"
	RelDescribedby            = "describedby"
	RelDescribes              = "describes"
	RelDisclosure             = "disclosure"
	RelDNSPrefetch            = "dns-prefetch"
	RelDuplicate              = "duplicate"
	RelEdit                   = "edit"
	RelEditForm               = "edit-form"
	RelEditMedia              = "edit-media"
	RelEnclosure              = "enclosure"
	RelExternal               = "external"
	RelFirst                  = "first"
	RelGlossary               = "glossary"
	RelHelp                   = "help"
	RelHosts                  = "hosts"
	RelHub                    = "hub"
	RelIcon                   = "icon"
	RelIndex                  = "index"
	RelIntervalAfter          = "intervalAfter"
	RelIntervalBefore         = "intervalBefore"
	RelIntervalContains       = "intervalContains"
	RelIntervalDisjoint       = "intervalDisjoint"
	RelIntervalDuring         = "intervalDuring"
	RelIntervalEquals         = "intervalEquals"
	RelIntervalFinishedBy     = "intervalFinishedBy"
	RelIntervalFinishes       = "intervalFinishes"
	RelIntervalIn             = "intervalIn"
	RelIntervalMeets          = "intervalMeets"
	RelIntervalMetBy          = "intervalMetBy"
	RelIntervalOverlappedBy   = "intervalOverlappedBy"
	RelIntervalOverlaps       = "intervalOverlaps"
	RelIntervalStartedBy      = "intervalStartedBy"
	RelIntervalStarts         = "intervalStarts"
	RelItem                   = "item"
	RelLast                   = "last"
	RelLatestVersion          = "latest-version"
	RelLicense                = "license"
	RelLRDD                   = "lrdd"
	RelManifest               = "manifest"
	RelMaskIcon               = "mask-icon"
	RelMediaFeed              = "media-feed"
	RelMemento                = "memento"
	RelMicropub               = "micropub"
	RelModulepreload          = "modulepreload"
	RelMonitor                = "monitor"
	RelMonitorGroup           = "monitor-group"
	RelNext                   = "next"
	RelNextArchive            = "next-archive"
	RelNofollow               = "nofollow"
	RelNoopener               = "noopener"
	RelNoreferrer             = "noreferrer"
	RelOpener                 = "opener"
	RelOpenID2LocalID         = "openid2.local_id"
	RelOpenID2Provider        = "openid2.provider"
	RelOriginal               = "original"
	RelP3Pv1                  = "P3Pv1"
	RelPayment                = "payment"
	RelPingback               = "pingback"
	RelPreconnect             = "preconnect"
	RelPredecessorVersion     = "predecessor-version"
	RelPrefetch               = "prefetch"
	RelPreload                = "preload"
	RelPrerender              = "prerender"
	RelPrev                   = "prev"
	RelPreview                = "preview"
	RelPrevious               = "previous"
	RelPrevArchive            = "prev-archive"
	RelPrivacyPolicy          = "privacy-policy"
	RelProfile                = "profile"
	RelPublication            = "publication"
	RelRelated                = "related"
	RelRestconf               = "restconf"
	RelReplies                = "replies"
	RelRuleinput              = "ruleinput"
	RelSearch                 = "search"
	RelSection                = "section"
	RelSelf                   = "self"
	RelService                = "service"
	RelServiceDesc            = "service-desc"
	RelServiceDoc             = "service-doc"
	RelServiceMeta            = "service-meta"
	RelSponsored              = "sponsored"
	RelStart                  = "start"
	RelStatus                 = "status"
	RelStylesheet             = "stylesheet"
	RelSubsection             = "subsection"
	RelSuccessorVersion       = "successor-version"
	RelSunset                 = "sunset"
	RelTag                    = "tag"
	RelTermsOfService         = "terms-of-service"
	RelTimegate               = "timegate"
	RelTimemap                = "timemap"
	RelType                   = "type"
	RelUGC                    = "ugc"
	RelUp                     = "up"
	RelVersionHistory         = "version-history"
	RelVia                    = "via"
	RelWebmention             = "webmention"
	RelWorkingCopy            = "working-copy"
	RelWorkingCopyOf          = "working-copy-of"
)
