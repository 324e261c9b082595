package share

// VERSION 版本号
const VERSION = "0.3.0"

// BUILDNAME 制品名称
const BUILDNAME = "codepack"

const PREFIX = "CODEPACK_"

const PATH = ".codepack"

// CONFIG_FILE 应用级配置文件名
const CONFIG_FILE = "config.json"

// PLUGINS_DIR 插件定义目录名
const PLUGINS_DIR = "plugins"

// DEFAULT_MAX_FILE_BYTES 单文件打包上限（1 MiB）
const DEFAULT_MAX_FILE_BYTES = 1 << 20

// MAX_PACK_FILES 一次打包的文件数上限
const MAX_PACK_FILES = 5000

// BYTES_PER_TOKEN token 估算比率（启发式，非真实分词器）
const BYTES_PER_TOKEN = 4

// MAX_REQUIREMENTS 元数据 requirements 展示上限
const MAX_REQUIREMENTS = 200

// MAX_SCAN_LINE_LEN 秘密扫描忽略超长行（压缩产物防回溯）
const MAX_SCAN_LINE_LEN = 1000

// GENERIC_PROJECT 无法识别项目类型时的回退值
const GENERIC_PROJECT = "generic"
