package catalog

import "github.com/louisbranch/toolbox/internal/platform/i18n"

// Default returns the built-in declarations. Each call returns fresh slices.
func Default() Declarations {
	return Declarations{
		Site: Site{
			Name:          "站长工具箱",
			ShortName:     "工具箱",
			Description:   "免费在线站长工具集合，提供50+实用工具",
			Keywords:      []string{"站长工具", "SEO工具", "在线工具", "开发工具", "编码解码", "格式化工具"},
			Author:        "站长工具箱",
			URL:           "https://example.com",
			DefaultLocale: i18n.Chinese,
			DefaultTheme:  "light",
			PrimaryColor:  "#3b82f6",
			Background:    "#ffffff",
		},
		Categories: []CategoryDecl{
			{ID: "seo", Icon: "search", Order: 1, Enabled: true},
			{ID: "encode", Icon: "binary", Order: 2, Enabled: true},
			{ID: "format", Icon: "code", Order: 3, Enabled: true},
			{ID: "image", Icon: "image", Order: 4, Enabled: true},
			{ID: "text", Icon: "file-text", Order: 5, Enabled: true},
			{ID: "time", Icon: "clock", Order: 6, Enabled: true},
			{ID: "color", Icon: "palette", Order: 7, Enabled: true},
			{ID: "dev", Icon: "code-2", Order: 8, Enabled: true},
			{ID: "network", Icon: "network", Order: 9, Enabled: true},
		},
		Toggles: []CategoryToggle{
			{ID: "seo", Order: 1, Enabled: true},
			{ID: "encode", Order: 2, Enabled: true},
			{ID: "format", Order: 3, Enabled: true},
			{ID: "image", Order: 4, Enabled: true},
			{ID: "text", Order: 5, Enabled: true},
			{ID: "time", Order: 6, Enabled: true},
			{ID: "color", Order: 7, Enabled: true},
			{ID: "dev", Order: 8, Enabled: true},
			{ID: "network", Order: 9, Enabled: true},
		},
		Tools: []ToolDecl{
			{
				ID: "meta-generator", CategoryID: "seo", Enabled: true, Featured: true, Order: 1, Icon: "tag",
				SEO: SEO{
					Title:       "Meta标签生成器 - SEO优化工具",
					Description: "在线生成网页Meta标签，包括标题、描述、关键词，优化网站SEO",
					Keywords:    []string{"meta标签", "SEO", "标题优化", "网页优化"},
					Path:        "/tools/seo/meta-generator",
				},
				Translations: map[i18n.Locale]SEO{i18n.English: {
					Title:       "Meta Tag Generator - SEO Optimization Tool",
					Description: "Generate page meta tags including title, description and keywords to improve SEO",
					Keywords:    []string{"meta tags", "SEO", "title", "page optimization"},
				}},
			},
			{
				ID: "json-formatter", CategoryID: "format", Enabled: true, Featured: true, Order: 1, Icon: "code",
				SEO: SEO{
					Title:       "JSON格式化工具 - 在线JSON美化/压缩/验证",
					Description: "在线JSON格式化、压缩、验证工具，支持树形展示和语法高亮",
					Keywords:    []string{"JSON", "格式化", "压缩", "验证", "美化"},
					Path:        "/tools/format/json-formatter",
				},
				Translations: map[i18n.Locale]SEO{i18n.English: {
					Title:       "JSON Formatter - Beautify, Minify and Validate JSON",
					Description: "Format, minify and validate JSON online",
					Keywords:    []string{"JSON", "formatter", "minify", "validate", "beautify"},
				}},
			},
			{
				ID: "base64-tool", CategoryID: "encode", Enabled: true, Featured: true, Order: 1, Icon: "binary",
				SEO: SEO{
					Title:       "Base64编码解码工具 - 在线Base64转换",
					Description: "在线Base64编码解码工具，支持文本和文件的Base64转换",
					Keywords:    []string{"Base64", "编码", "解码", "转换"},
					Path:        "/tools/encode/base64-tool",
				},
				Translations: map[i18n.Locale]SEO{i18n.English: {
					Title:       "Base64 Encoder and Decoder - Online Base64 Converter",
					Description: "Encode and decode text as Base64 online",
					Keywords:    []string{"Base64", "encode", "decode", "convert"},
				}},
			},
			{
				ID: "url-tool", CategoryID: "encode", Enabled: true, Featured: false, Order: 2, Icon: "link",
				SEO: SEO{
					Title:       "URL编码解码工具 - URL转码工具",
					Description: "在线URL编码解码工具，快速进行URL转码和解码",
					Keywords:    []string{"URL", "编码", "解码", "URL转码"},
					Path:        "/tools/encode/url-tool",
				},
				Translations: map[i18n.Locale]SEO{i18n.English: {
					Title:       "URL Encoder and Decoder",
					Description: "Percent-encode and decode URL components online",
					Keywords:    []string{"URL", "encode", "decode", "percent encoding"},
				}},
			},
			{
				ID: "md5-tool", CategoryID: "encode", Enabled: true, Featured: false, Order: 3, Icon: "hash",
				SEO: SEO{
					Title:       "MD5加密工具 - 在线MD5生成器",
					Description: "在线MD5加密工具，快速生成MD5哈希值",
					Keywords:    []string{"MD5", "加密", "哈希", "MD5生成器"},
					Path:        "/tools/encode/md5-tool",
				},
				Translations: map[i18n.Locale]SEO{i18n.English: {
					Title:       "MD5 Hash Generator",
					Description: "Compute MD5 digests of text online",
					Keywords:    []string{"MD5", "hash", "digest", "MD5 generator"},
				}},
			},
			{
				ID: "timestamp-converter", CategoryID: "time", Enabled: true, Featured: false, Order: 1, Icon: "clock",
				SEO: SEO{
					Title:       "Unix时间戳转换 - 时间戳转日期",
					Description: "在线Unix时间戳转换工具，时间戳与日期格式互转",
					Keywords:    []string{"时间戳", "Unix", "日期转换", "时间转换"},
					Path:        "/tools/time/timestamp-converter",
				},
				Translations: map[i18n.Locale]SEO{i18n.English: {
					Title:       "Unix Timestamp Converter",
					Description: "Convert between Unix timestamps and dates online",
					Keywords:    []string{"timestamp", "Unix", "date conversion", "epoch"},
				}},
			},
			{
				ID: "qrcode-generator", CategoryID: "image", Enabled: true, Featured: true, Order: 1, Icon: "qr-code",
				SEO: SEO{
					Title:       "二维码生成器 - 在线生成QR码",
					Description: "在线二维码生成工具，支持文本、URL等多种内容生成二维码",
					Keywords:    []string{"二维码", "QR码", "二维码生成", "QR生成器"},
					Path:        "/tools/image/qrcode-generator",
				},
				Translations: map[i18n.Locale]SEO{i18n.English: {
					Title:       "QR Code Generator",
					Description: "Generate QR codes for text and URLs online",
					Keywords:    []string{"QR code", "QR generator", "barcode"},
				}},
			},
			{
				ID: "color-converter", CategoryID: "color", Enabled: true, Featured: false, Order: 1, Icon: "palette",
				SEO: SEO{
					Title:       "颜色转换工具 - HEX/RGB/HSL互转",
					Description: "在线颜色转换工具，支持HEX、RGB、HSL等多种颜色格式互转",
					Keywords:    []string{"颜色转换", "HEX", "RGB", "HSL", "颜色格式"},
					Path:        "/tools/color/color-converter",
				},
				Translations: map[i18n.Locale]SEO{i18n.English: {
					Title:       "Color Converter - HEX, RGB and HSL",
					Description: "Convert colors between HEX, RGB and HSL online",
					Keywords:    []string{"color converter", "HEX", "RGB", "HSL"},
				}},
			},
			{
				ID: "uuid-generator", CategoryID: "dev", Enabled: true, Featured: false, Order: 1, Icon: "fingerprint",
				SEO: SEO{
					Title:       "UUID生成器 - 在线生成唯一ID",
					Description: "在线UUID/GUID生成工具，快速生成唯一标识符",
					Keywords:    []string{"UUID", "GUID", "唯一ID", "ID生成器"},
					Path:        "/tools/dev/uuid-generator",
				},
				Translations: map[i18n.Locale]SEO{i18n.English: {
					Title:       "UUID Generator",
					Description: "Generate random UUID/GUID identifiers online",
					Keywords:    []string{"UUID", "GUID", "unique id", "id generator"},
				}},
			},
			{
				ID: "password-generator", CategoryID: "dev", Enabled: true, Featured: true, Order: 2, Icon: "key",
				SEO: SEO{
					Title:       "密码生成器 - 随机强密码生成",
					Description: "在线随机密码生成工具，生成安全的强密码",
					Keywords:    []string{"密码生成器", "随机密码", "强密码", "密码工具"},
					Path:        "/tools/dev/password-generator",
				},
				Translations: map[i18n.Locale]SEO{i18n.English: {
					Title:       "Password Generator - Strong Random Passwords",
					Description: "Generate secure random passwords online",
					Keywords:    []string{"password generator", "random password", "strong password"},
				}},
			},
		},
	}
}
